//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// lineCount holds production and test line totals for one top-level directory.
type lineCount struct {
	prod, test int
}

// Stats prints Go lines of code per top-level directory (cmd, internal, pkg),
// split into production and test code. Magefiles and _-prefixed directories
// are skipped.
func Stats() error {
	counts := map[string]*lineCount{}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (name == "vendor" || name == binaryDir || name == "magefiles" ||
				strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}

		top, _, _ := strings.Cut(filepath.ToSlash(path), "/")
		c, ok := counts[top]
		if !ok {
			c = &lineCount{}
			counts[top] = c
		}
		n := bytes.Count(data, []byte("\n"))
		if strings.HasSuffix(path, "_test.go") {
			c.test += n
		} else {
			c.prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(counts))
	for dir := range counts {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var total lineCount
	fmt.Printf("%-10s %8s %8s\n", "dir", "prod", "test")
	for _, dir := range dirs {
		c := counts[dir]
		fmt.Printf("%-10s %8d %8d\n", dir, c.prod, c.test)
		total.prod += c.prod
		total.test += c.test
	}
	fmt.Printf("%-10s %8d %8d\n", "total", total.prod, total.test)
	return nil
}
