package types

// BikeInfo extracts the display string of a bike.
type BikeInfo interface {
	// GetInfo returns the description of bike. bike must not be nil.
	GetInfo(bike Bike) string
}
