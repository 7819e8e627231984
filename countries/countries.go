// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package countries maps country names to ISO 3166-1 alpha-2 codes.
package countries

import "time"

// Codes is the lookup table. It is read-only.
var Codes = map[string]string{
	"France":         "FR",
	"Germany":        "DE",
	"Spain":          "ES",
	"Italy":          "IT",
	"United Kingdom": "GB",
	"Belgium":        "BE",
	"Netherlands":    "NL",
	"Switzerland":    "CH",
	"Austria":        "AT",
	"Portugal":       "PT",
}

// Names returns the country names in a fixed order.
func Names() []string {
	return []string{
		"France", "Germany", "Spain", "Italy", "United Kingdom",
		"Belgium", "Netherlands", "Switzerland", "Austria", "Portugal",
	}
}

// Unknown is how an unmapped name is displayed.
const Unknown = "XX"

// A Code is the result of a lookup: either a code or nothing.
type Code struct {
	ISO string
	OK  bool
}

// String returns the ISO code, or Unknown if the lookup failed.
func (c Code) String() string {
	if !c.OK {
		return Unknown
	}
	return c.ISO
}

// Lookup returns the code for name. Unmapped names yield a Code with
// OK false rather than a placeholder code.
func Lookup(name string) Code {
	iso, ok := Codes[name]
	return Code{ISO: iso, OK: ok}
}

// SlowLookup returns a lookup function that behaves like Lookup but
// first waits for cost, standing in for an expensive remote call.
func SlowLookup(cost time.Duration) func(string) Code {
	return func(name string) Code {
		if cost > 0 {
			time.Sleep(cost)
		}
		return Lookup(name)
	}
}
