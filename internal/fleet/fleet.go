// Package fleet loads bike definitions from a YAML fleet file.
package fleet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// File is the on-disk layout of a fleet file.
type File struct {
	Bikes []Entry `yaml:"bikes"`
}

// Entry describes one bike. ID is optional; a UUID v7 is generated when it
// is empty. Gears applies to city bikes, BatteryHours to electric bikes.
type Entry struct {
	Kind         string  `yaml:"kind"`
	ID           string  `yaml:"id,omitempty"`
	Name         string  `yaml:"name"`
	PricePerHour float64 `yaml:"price_per_hour"`
	Gears        int     `yaml:"gears,omitempty"`
	BatteryHours float64 `yaml:"battery_hours,omitempty"`
}

// Load reads and parses the fleet file at path.
func Load(path string) ([]types.Bike, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fleet: %w", err)
	}
	bikes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse fleet %s: %w", path, err)
	}
	return bikes, nil
}

// Parse decodes fleet YAML into bikes, in file order.
func Parse(data []byte) ([]types.Bike, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidFleet, err)
	}

	bikes := make([]types.Bike, 0, len(f.Bikes))
	for i, e := range f.Bikes {
		b, err := e.Bike()
		if err != nil {
			return nil, fmt.Errorf("bike %d: %w", i, err)
		}
		bikes = append(bikes, b)
	}
	return bikes, nil
}

// Bike builds the bike described by e.
// Returns ErrInvalidBikeName for an empty name and ErrInvalidBikeKind for an
// unrecognized kind.
func (e Entry) Bike() (types.Bike, error) {
	if e.Name == "" {
		return nil, types.ErrInvalidBikeName
	}
	id := e.ID
	if id == "" {
		id = types.NewID()
	}

	switch e.Kind {
	case types.KindCity:
		return types.NewCityBikeWithID(id, e.Name, e.PricePerHour, e.Gears), nil
	case types.KindElectric:
		return types.NewElectricBikeWithID(id, e.Name, e.PricePerHour, e.BatteryHours), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidBikeKind, e.Kind)
	}
}

// Demo returns the two bikes of the reference scenario.
func Demo() []types.Bike {
	return []types.Bike{
		types.NewCityBike("CityRider", 5, 6),
		types.NewElectricBike("ElectroVolt", 15, 8),
	}
}
