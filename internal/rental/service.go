// Package rental implements the rental workflow: it composes a BikeSearcher,
// BikeInfo, Printer and Notifier to rent a bike by identifier.
package rental

import (
	"fmt"

	"github.com/mesh-intelligence/bikerental/internal/logger"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// Receipt is the outcome of a rental attempt.
type Receipt struct {
	BikeID       string `json:"bike_id"`
	Found        bool   `json:"found"`
	Order        string `json:"order,omitempty"`
	Printed      string `json:"printed,omitempty"`
	Notification string `json:"notification"`
}

// Service orchestrates a rental. It holds exactly one instance of each
// capability, supplied at construction.
type Service struct {
	searcher types.BikeSearcher
	printer  types.Printer
	notifier types.Notifier
	info     types.BikeInfo
	log      *logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used to trace rentals.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService wires the four capabilities into a Service.
func NewService(searcher types.BikeSearcher, printer types.Printer, notifier types.Notifier, info types.BikeInfo, opts ...Option) *Service {
	s := &Service{
		searcher: searcher,
		printer:  printer,
		notifier: notifier,
		info:     info,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RentBike rents the bike with the given identifier for hours and returns the
// notification text. A missing bike yields the not-found notification and
// nothing is printed. hours is not validated.
func (s *Service) RentBike(bikeID string, hours float64) string {
	return s.Rent(bikeID, hours).Notification
}

// Rent performs the same workflow as RentBike and also reports the order and
// the printer output.
func (s *Service) Rent(bikeID string, hours float64) Receipt {
	bike, ok := s.searcher.FindBike(bikeID)
	if !ok {
		s.log.Debug("rental.bike_not_found", "bike_id", bikeID)
		return Receipt{
			BikeID:       bikeID,
			Notification: s.notifier.Send(fmt.Sprintf("Bike with ID %s not found", bikeID)),
		}
	}

	order := fmt.Sprintf("Rental: %s for %s hours", s.info.GetInfo(bike), types.FormatNumber(hours))
	printed := s.printer.PrintOrder(order)
	s.log.Debug("rental.order_printed", "bike_id", bikeID, "hours", hours)

	return Receipt{
		BikeID:       bikeID,
		Found:        true,
		Order:        order,
		Printed:      printed,
		Notification: s.notifier.Send("Bike rented: " + order),
	}
}
