package info

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

var _ types.BikeInfo = Service{}

func TestGetInfo(t *testing.T) {
	s := New()

	city := types.NewCityBike("CityRider", 5, 6)
	assert.Equal(t, city.Details(), s.GetInfo(city))
	assert.Equal(t, "CityRider: $5/hour, Gears: 6", s.GetInfo(city))

	electric := types.NewElectricBike("ElectroVolt", 15, 8)
	assert.Equal(t, "ElectroVolt: $15/hour, Battery: 8 hours", s.GetInfo(electric))
}
