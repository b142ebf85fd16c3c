// Package sqlite implements BikeSearcher on an in-memory SQLite database.
// SQLite serves only as the query engine; the database lives and dies with
// the process and nothing is written to disk.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bikerental/internal/logger"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// memoryDSN opens a private in-memory database. Every pooled connection
// would get its own empty database, so the pool is pinned to one connection.
const memoryDSN = ":memory:"

// Searcher stores bikes in a SQLite table keyed by bike_id.
type Searcher struct {
	mu  sync.RWMutex
	db  *sql.DB
	log *logger.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger that receives lookup tracing and the storage
// errors the BikeSearcher contract cannot return.
func WithLogger(l *logger.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.log = l
		}
	}
}

// Open creates the in-memory database and its schema.
// The caller must call Close to release it.
func Open(opts ...Option) (*Searcher, error) {
	s := &Searcher{log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createBikes); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s.db = db
	return s, nil
}

// Close releases the database. Idempotent. After Close, AddBike is a no-op
// and FindBike reports every identifier as absent.
func (s *Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// AddBike upserts bike keyed by its identifier (last write wins).
// Only the CityBike and ElectricBike variants can be stored; anything else
// is logged and dropped.
func (s *Searcher) AddBike(bike types.Bike) {
	if err := s.save(bike); err != nil {
		s.log.Error("bike.add_failed", "bike_id", bike.ID(), "error", err)
		return
	}
	s.log.Debug("bike.added", "bike_id", bike.ID())
}

// FindBike returns the bike stored under id, or false if there is none.
// Storage errors are logged and reported as absent.
func (s *Searcher) FindBike(id string) (types.Bike, bool) {
	b, err := s.load(id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error("bike.find_failed", "bike_id", id, "error", err)
		}
		return nil, false
	}
	return b, true
}

// Count returns the number of stored bikes.
func (s *Searcher) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, types.ErrSearcherClosed
	}
	var n int
	if err := s.db.QueryRow(countBikes).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Searcher) save(bike types.Bike) error {
	row := bikeRow{
		id:           bike.ID(),
		kind:         types.KindOf(bike),
		name:         bike.Name(),
		pricePerHour: nullableReal(bike.PricePerHour()),
	}
	switch b := bike.(type) {
	case *types.CityBike:
		row.gearCount = int64(b.GearCount())
	case *types.ElectricBike:
		row.batteryLife = nullableReal(b.BatteryLife())
	default:
		return fmt.Errorf("%w: %T", types.ErrInvalidBikeKind, bike)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return types.ErrSearcherClosed
	}
	_, err := s.db.Exec(upsertBike,
		row.id, row.kind, row.name, row.pricePerHour, row.gearCount, row.batteryLife)
	return err
}

// nullableReal maps NaN to NULL explicitly rather than relying on the driver.
func nullableReal(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: !math.IsNaN(f)}
}

func (s *Searcher) load(id string) (types.Bike, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrSearcherClosed
	}
	var row bikeRow
	err := s.db.QueryRow(selectBike, id).Scan(
		&row.id, &row.kind, &row.name, &row.pricePerHour, &row.gearCount, &row.batteryLife)
	if err != nil {
		return nil, err
	}
	return row.toBike()
}
