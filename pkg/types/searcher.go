package types

import "errors"

// BikeSearcher owns a registry of bikes keyed by identifier.
type BikeSearcher interface {
	// AddBike registers bike under bike.ID(). An existing entry with the same
	// identifier is replaced (last write wins).
	AddBike(bike Bike)

	// FindBike returns the bike registered under id. The second result is
	// false when no entry exists; a missing key is not an error.
	FindBike(id string) (Bike, bool)
}

// Searcher backends accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// ErrSearcherClosed is reported by searchers whose backing store has been released.
var ErrSearcherClosed = errors.New("searcher is closed")
