//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every package test.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Race runs every package test with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Demo builds the binary and runs the reference rental scenario on both
// searcher backends.
func (Test) Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	tmp, err := sh.Output("mktemp", "-d")
	if err != nil {
		return err
	}
	for _, backend := range []string{"memory", "sqlite"} {
		if err := sh.RunV(bin, "demo", "--config-dir", tmp, "--backend", backend); err != nil {
			return err
		}
	}
	return nil
}
