package types

import "errors"

// Driver input errors. The rental workflow itself accepts any number of hours;
// these are raised only while reading command-line arguments and fleet files.
var (
	ErrInvalidHours = errors.New("hours must be a number")
	ErrInvalidFleet = errors.New("invalid fleet file")
)
