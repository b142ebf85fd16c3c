package types

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBikeDetails(t *testing.T) {
	tests := []struct {
		name string
		bike Bike
		want string
	}{
		{
			name: "city bike with whole price",
			bike: NewCityBike("CityRider", 5, 6),
			want: "CityRider: $5/hour, Gears: 6",
		},
		{
			name: "electric bike with whole price",
			bike: NewElectricBike("ElectroVolt", 15, 8),
			want: "ElectroVolt: $15/hour, Battery: 8 hours",
		},
		{
			name: "fractional price and battery",
			bike: NewElectricBike("Zip", 7.5, 2.25),
			want: "Zip: $7.5/hour, Battery: 2.25 hours",
		},
		{
			name: "zero gears",
			bike: NewCityBike("Fixie", 3, 0),
			want: "Fixie: $3/hour, Gears: 0",
		},
		{
			name: "negative price passes through unchanged",
			bike: NewCityBike("Odd", -2, 1),
			want: "Odd: $-2/hour, Gears: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bike.Details())
		})
	}
}

func TestNewBikeGeneratesUUIDv7(t *testing.T) {
	city := NewCityBike("CityRider", 5, 6)
	electric := NewElectricBike("ElectroVolt", 15, 8)

	for _, id := range []string{city.ID(), electric.ID()} {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	}
	assert.NotEqual(t, city.ID(), electric.ID())
}

func TestNewBikeWithID(t *testing.T) {
	city := NewCityBikeWithID("c-1", "CityRider", 5, 6)
	assert.Equal(t, "c-1", city.ID())
	assert.Equal(t, "CityRider", city.Name())
	assert.Equal(t, 5.0, city.PricePerHour())
	assert.Equal(t, 6, city.GearCount())

	electric := NewElectricBikeWithID("e-1", "ElectroVolt", 15, 8)
	assert.Equal(t, "e-1", electric.ID())
	assert.Equal(t, 8.0, electric.BatteryLife())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindCity, KindOf(NewCityBike("a", 1, 1)))
	assert.Equal(t, KindElectric, KindOf(NewElectricBike("b", 1, 1)))
	assert.Equal(t, "", KindOf(nil))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 5, "5"},
		{"fraction", 0.1, "0.1"},
		{"negative", -3, "-3"},
		{"million", 1e6, "1000000"},
		{"largest fixed", 1e20, "100000000000000000000"},
		{"exponent from 1e21", 1e21, "1e+21"},
		{"exponent with mantissa", 1.5e22, "1.5e+22"},
		{"smallest fixed", 1e-6, "0.000001"},
		{"exponent below 1e-6", 1e-7, "1e-7"},
		{"negative small exponent", -2.5e-8, "-2.5e-8"},
		{"three-digit exponent", 1e100, "1e+100"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"not a number", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestBikeDetails_SpecialNumbers(t *testing.T) {
	assert.Equal(t, "X: $Infinity/hour, Battery: NaN hours",
		NewElectricBike("X", math.Inf(1), math.NaN()).Details())
}
