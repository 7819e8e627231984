// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler divides values by Factor and prints them with Prec digits
// after the decimal point followed by Prefix.
type Scaler struct {
	Prec   int
	Factor float64
	Prefix string
}

// Format formats val in the scale s. Values with units should be
// tidied first, or "123.4M ns" can come out of nanosecond input.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	return string(append(buf, s.Prefix...))
}

// Exact formats values with as many digits as needed and no prefix.
var Exact = Scaler{-1, 1, ""}

type prefix struct {
	name   string
	factor float64
}

var (
	siPrefixes = []prefix{
		{"T", 1e12}, {"G", 1e9}, {"M", 1e6}, {"k", 1e3},
		{"", 1}, {"m", 1e-3}, {"µ", 1e-6}, {"n", 1e-9},
	}
	iecPrefixes = []prefix{
		{"Ti", 1 << 40}, {"Gi", 1 << 30}, {"Mi", 1 << 20}, {"Ki", 1 << 10}, {"", 1},
	}
)

const maxPrec = 10

// Scale formats val with at least three significant digits.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a Scaler that shows at least three significant
// digits for every value in vals. The non-zero value nearest zero picks
// the scale.
func CommonScale(vals []float64, cls Class) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	var prefixes []prefix
	switch cls {
	case Decimal:
		prefixes = siPrefixes
	case Binary:
		prefixes = iecPrefixes
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	}

	// Thresholds sit just below where rounding to four digits would
	// carry into the next decade.
	for _, p := range prefixes {
		v := min / p.factor
		switch {
		case v >= 99.995:
			return Scaler{1, p.factor, p.name}
		case v >= 9.9995:
			return Scaler{2, p.factor, p.name}
		case v >= 0.99995:
			return Scaler{3, p.factor, p.name}
		}
	}

	// Below the smallest prefix: add digits instead.
	last := prefixes[len(prefixes)-1]
	v := min / last.factor
	prec := 3
	for t := 0.99995; v < t && prec < maxPrec; t /= 10 {
		prec++
	}
	return Scaler{prec, last.factor, last.name}
}
