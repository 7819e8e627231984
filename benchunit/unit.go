// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit normalizes measurement units and formats values in
// those units for display.
package benchunit

import (
	"fmt"
	"strings"
	"time"
)

// A Class specifies which family of unit prefixes a value is scaled by.
type Class int

const (
	// Decimal scales by powers of 1000 with SI prefixes ("k", "m", "µ").
	Decimal Class = iota
	// Binary scales by powers of 1024 with IEC prefixes ("Ki", "Mi").
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns Binary if the numerator of unit measures bytes and
// Decimal otherwise.
func ClassOf(unit string) Class {
	num, _, _ := strings.Cut(unit, "/")
	for _, tok := range strings.FieldsFunc(num, isSep) {
		switch tok {
		case "B", "KB", "MB", "bytes":
			return Binary
		}
	}
	return Decimal
}

func isSep(r rune) bool { return r == '*' || r == '-' || r == ' ' }

type base struct {
	unit   string
	factor float64
}

var bases = map[string]base{
	"ns": {"sec", 1e-9},
	"us": {"sec", 1e-6},
	"µs": {"sec", 1e-6},
	"ms": {"sec", 1e-3},
	"s":  {"sec", 1},
	"KB": {"B", 1e3},
	"MB": {"B", 1e6},
}

// Tidy converts value in a pre-scaled unit to the base unit. For
// example, Tidy(1500, "ns/op") returns 1.5e-6, "sec/op". Only the first
// numerator term is rewritten; units it does not know are returned
// unchanged.
func Tidy(value float64, unit string) (float64, string) {
	num, den, hasDen := strings.Cut(unit, "/")
	b, ok := bases[num]
	if !ok {
		return value, unit
	}
	if hasDen {
		return value * b.factor, b.unit + "/" + den
	}
	return value * b.factor, b.unit
}

// Duration formats d in seconds with an SI prefix, such as "1.234ms".
func Duration(d time.Duration) string {
	return Scale(d.Seconds(), Decimal) + "s"
}
