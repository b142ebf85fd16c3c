// Package info implements the BikeInfo capability.
package info

import "github.com/mesh-intelligence/bikerental/pkg/types"

// Service describes bikes by delegating to their own Details method.
type Service struct{}

// New returns an info Service.
func New() Service {
	return Service{}
}

// GetInfo returns bike.Details() verbatim. bike must not be nil.
func (Service) GetInfo(bike types.Bike) string {
	return bike.Details()
}
