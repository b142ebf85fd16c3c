package sqlite

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// Schema DDL and statements for the bikes table.
const (
	createBikes = `CREATE TABLE bikes (
    bike_id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    price_per_hour REAL,
    gear_count INTEGER NOT NULL DEFAULT 0,
    battery_life REAL DEFAULT 0
);`

	upsertBike = `INSERT OR REPLACE INTO bikes
    (bike_id, kind, name, price_per_hour, gear_count, battery_life)
    VALUES (?, ?, ?, ?, ?, ?)`

	selectBike = `SELECT bike_id, kind, name, price_per_hour, gear_count, battery_life
    FROM bikes WHERE bike_id = ?`

	countBikes = `SELECT COUNT(*) FROM bikes`
)

// bikeRow is the flat column layout of a bike; the kind column selects which
// of gear_count and battery_life is meaningful. SQLite stores NaN as NULL,
// so the REAL columns are nullable and NULL reads back as NaN.
type bikeRow struct {
	id           string
	kind         string
	name         string
	pricePerHour sql.NullFloat64
	gearCount    int64
	batteryLife  sql.NullFloat64
}

func (r bikeRow) toBike() (types.Bike, error) {
	price := realOrNaN(r.pricePerHour)
	switch r.kind {
	case types.KindCity:
		return types.NewCityBikeWithID(r.id, r.name, price, int(r.gearCount)), nil
	case types.KindElectric:
		return types.NewElectricBikeWithID(r.id, r.name, price, realOrNaN(r.batteryLife)), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidBikeKind, r.kind)
	}
}

func realOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
