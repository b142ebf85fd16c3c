// Package types defines the Bike entities and the capability interfaces
// (Notifier, Printer, BikeSearcher, BikeInfo) that the rental workflow composes,
// together with configuration and the standard error values.
package types
