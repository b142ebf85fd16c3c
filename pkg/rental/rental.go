// Package rental is the public API of the bike rental workflow. It exposes
// constructors for every capability variant and for the orchestrating
// Service, while keeping implementation details internal.
//
// Example:
//
//	searcher := rental.NewMemorySearcher()
//	city := types.NewCityBike("CityRider", 5, 6)
//	searcher.AddBike(city)
//
//	svc := rental.NewService(searcher, rental.NewPrinter(), rental.NewEmailNotifier(), rental.NewInfo())
//	fmt.Println(svc.RentBike(city.ID(), 2))
//	// Email sent: Bike rented: Rental: CityRider: $5/hour, Gears: 6 for 2 hours
package rental

import (
	"github.com/mesh-intelligence/bikerental/internal/info"
	"github.com/mesh-intelligence/bikerental/internal/memory"
	"github.com/mesh-intelligence/bikerental/internal/notify"
	"github.com/mesh-intelligence/bikerental/internal/printer"
	"github.com/mesh-intelligence/bikerental/internal/rental"
	"github.com/mesh-intelligence/bikerental/internal/sqlite"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// Version is the bikerental release version.
const Version = "0.1.0"

type (
	// Service rents bikes by composing the four capabilities.
	Service = rental.Service

	// Receipt is the detailed outcome of Service.Rent.
	Receipt = rental.Receipt

	// SQLiteSearcher is a BikeSearcher backed by an in-memory SQLite database.
	SQLiteSearcher = sqlite.Searcher
)

// NewService wires searcher, printer, notifier and info into a Service.
func NewService(searcher types.BikeSearcher, printer types.Printer, notifier types.Notifier, info types.BikeInfo) *Service {
	return rental.NewService(searcher, printer, notifier, info)
}

// NewEmailNotifier returns the e-mail Notifier.
func NewEmailNotifier() types.Notifier { return notify.Email{} }

// NewSMSNotifier returns the SMS Notifier.
func NewSMSNotifier() types.Notifier { return notify.SMS{} }

// NewNotifier returns the Notifier for channel (types.ChannelEmail or
// types.ChannelSMS). Returns ErrNotifierUnknown otherwise.
func NewNotifier(channel string) (types.Notifier, error) { return notify.New(channel) }

// NewPrinter returns the order Printer.
func NewPrinter() types.Printer { return printer.New() }

// NewInfo returns the BikeInfo service.
func NewInfo() types.BikeInfo { return info.New() }

// NewMemorySearcher returns an empty map-backed BikeSearcher.
func NewMemorySearcher() types.BikeSearcher { return memory.New() }

// OpenSQLiteSearcher opens an empty SQLite-backed BikeSearcher.
// The caller must Close it.
func OpenSQLiteSearcher() (*SQLiteSearcher, error) { return sqlite.Open() }
