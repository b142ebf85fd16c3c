package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

var _ types.BikeSearcher = (*Searcher)(nil)

func TestSearcher_AddFind(t *testing.T) {
	s := New()
	city := types.NewCityBike("CityRider", 5, 6)
	electric := types.NewElectricBike("ElectroVolt", 15, 8)

	s.AddBike(city)
	s.AddBike(electric)

	got, ok := s.FindBike(city.ID())
	require.True(t, ok)
	assert.Equal(t, city, got)

	got, ok = s.FindBike(electric.ID())
	require.True(t, ok)
	assert.Equal(t, electric, got)
	assert.Equal(t, 2, s.Len())
}

func TestSearcher_FindMissing(t *testing.T) {
	s := New()

	got, ok := s.FindBike("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = s.FindBike("")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSearcher_LastWriteWins(t *testing.T) {
	s := New()
	first := types.NewCityBikeWithID("dup", "First", 1, 1)
	second := types.NewElectricBikeWithID("dup", "Second", 2, 2)

	s.AddBike(first)
	s.AddBike(second)

	got, ok := s.FindBike("dup")
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Equal(t, 1, s.Len())
}

func TestSearcher_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("bike-%d", i)
			s.AddBike(types.NewCityBikeWithID(id, "CityRider", 5, i))
			_, ok := s.FindBike(id)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
