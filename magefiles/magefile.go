//go:build mage

// Package main provides build targets for the bikerental project using Mage.
//
// Usage:
//
//	mage build       Compile bikerent binary to bin/
//	mage test:all    Run all tests
//	mage test:race   Run all tests with the race detector
//	mage test:demo   Build and run the reference scenario
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install bikerent to GOPATH/bin
//	mage stats       Print Go lines of code
package main

// Default target when mage is run without arguments.
var Default = Build
