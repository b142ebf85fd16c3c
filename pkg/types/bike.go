package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Bike kinds, used by fleet files and the SQLite searcher to tag variants.
const (
	KindCity     = "city"
	KindElectric = "electric"
)

// Bike construction errors.
var (
	ErrInvalidBikeKind = errors.New("invalid bike kind")
	ErrInvalidBikeName = errors.New("bike name must not be empty")
)

// Bike is a rentable item. Implementations are immutable after construction.
type Bike interface {
	// ID returns the identifier assigned at construction.
	ID() string

	// Name returns the display name.
	Name() string

	// PricePerHour returns the hourly rental price.
	PricePerHour() float64

	// Details returns the human-readable description of the bike.
	Details() string
}

// bike holds the fields shared by every variant. Fields are unexported so the
// identifier cannot be reassigned once set.
type bike struct {
	id           string
	name         string
	pricePerHour float64
}

func (b bike) ID() string            { return b.id }
func (b bike) Name() string          { return b.name }
func (b bike) PricePerHour() float64 { return b.pricePerHour }

// Details returns "{name}: ${price}/hour".
func (b bike) Details() string {
	return fmt.Sprintf("%s: $%s/hour", b.name, FormatNumber(b.pricePerHour))
}

// CityBike is a bike with a gear count.
type CityBike struct {
	bike
	gearCount int
}

// NewCityBike creates a CityBike with a freshly generated UUID v7 identifier.
func NewCityBike(name string, pricePerHour float64, gearCount int) *CityBike {
	return NewCityBikeWithID(NewID(), name, pricePerHour, gearCount)
}

// NewCityBikeWithID creates a CityBike with the given identifier.
func NewCityBikeWithID(id, name string, pricePerHour float64, gearCount int) *CityBike {
	return &CityBike{
		bike:      bike{id: id, name: name, pricePerHour: pricePerHour},
		gearCount: gearCount,
	}
}

// GearCount returns the number of gears.
func (c *CityBike) GearCount() int { return c.gearCount }

// Details returns the base description followed by ", Gears: {gearCount}".
func (c *CityBike) Details() string {
	return fmt.Sprintf("%s, Gears: %d", c.bike.Details(), c.gearCount)
}

// ElectricBike is a bike with a battery life expressed in hours.
type ElectricBike struct {
	bike
	batteryLife float64
}

// NewElectricBike creates an ElectricBike with a freshly generated UUID v7 identifier.
func NewElectricBike(name string, pricePerHour, batteryLife float64) *ElectricBike {
	return NewElectricBikeWithID(NewID(), name, pricePerHour, batteryLife)
}

// NewElectricBikeWithID creates an ElectricBike with the given identifier.
func NewElectricBikeWithID(id, name string, pricePerHour, batteryLife float64) *ElectricBike {
	return &ElectricBike{
		bike:        bike{id: id, name: name, pricePerHour: pricePerHour},
		batteryLife: batteryLife,
	}
}

// BatteryLife returns the battery life in hours.
func (e *ElectricBike) BatteryLife() float64 { return e.batteryLife }

// Details returns the base description followed by ", Battery: {batteryLife} hours".
func (e *ElectricBike) Details() string {
	return fmt.Sprintf("%s, Battery: %s hours", e.bike.Details(), FormatNumber(e.batteryLife))
}

// KindOf returns the kind tag of a bike variant, or "" for unknown variants.
func KindOf(b Bike) string {
	switch b.(type) {
	case *CityBike:
		return KindCity
	case *ElectricBike:
		return KindElectric
	default:
		return ""
	}
}

// NewID generates a new UUID v7 for bike identifiers.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// FormatNumber renders f the way JavaScript converts a number to a string:
// the shortest decimal that round-trips, exponent notation below 1e-6 and
// from 1e21 up, "0" for negative zero, and NaN, Infinity, -Infinity.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		// Go pads the exponent to two digits (1e-07); JavaScript does not.
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
