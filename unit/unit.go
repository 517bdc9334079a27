// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.

// Package unit represents quantities of digital storage and converts them
// between binary (KiB, MiB, GiB, TiB, PiB, EiB) and decimal (KB, MB, GB, TB,
// PB, EB) unit prefixes. A Size is an immutable value that remembers the base
// it was constructed with and can be compared, combined and rendered with a
// small format language, see Render.
package unit

import (
	"fmt"
	"math"
)

const (
	Byte = 1

	// The binary (IEC) prefixes are powers of 1024.
	Kibibyte = Byte * 1024
	Mebibyte = Kibibyte * 1024
	Gibibyte = Mebibyte * 1024
	Tebibyte = Gibibyte * 1024
	Pebibyte = Tebibyte * 1024
	Exbibyte = Pebibyte * 1024

	KiB = Kibibyte
	MiB = Mebibyte
	GiB = Gibibyte
	TiB = Tebibyte
	PiB = Pebibyte
	EiB = Exbibyte

	// The decimal (SI) prefixes are powers of 1000.
	Kilobyte = Byte * 1000
	Megabyte = Kilobyte * 1000
	Gigabyte = Megabyte * 1000
	Terabyte = Gigabyte * 1000
	Petabyte = Terabyte * 1000
	Exabyte  = Petabyte * 1000

	KB = Kilobyte
	MB = Megabyte
	GB = Gigabyte
	TB = Terabyte
	PB = Petabyte
	EB = Exabyte
)

// Base is the multiplier step between two consecutive unit prefixes.
type Base int

const (
	Binary  Base = 1024
	Decimal Base = 1000
)

func (b Base) String() string {
	if b == Decimal {
		return "decimal"
	}
	return "binary"
}

// Unit is a named storage multiplier. Its scale factor is Base raised to Exp,
// e.g. MiB is 1024^2 and GB is 1000^3. The byte unit has exponent zero and is
// shared by both bases; it carries the binary tag so that own-base
// conversions of byte-constructed sizes use powers of 1024.
type Unit struct {
	Symbol string
	Base   Base
	Exp    int
}

// Scale returns the number of bytes in one of this unit.
func (u Unit) Scale() float64 {
	return math.Pow(float64(u.Base), float64(u.Exp))
}

// prefixes are ordered by exponent; prefixes[i] has exponent i+1 in both
// bases.
var prefixes = [...]string{"K", "M", "G", "T", "P", "E"}

var units = makeUnits()

func makeUnits() map[string]Unit {
	m := map[string]Unit{
		"B": {Symbol: "B", Base: Binary, Exp: 0},
	}
	for i, p := range prefixes {
		m[p+"iB"] = Unit{Symbol: p + "iB", Base: Binary, Exp: i + 1}
		m[p+"B"] = Unit{Symbol: p + "B", Base: Decimal, Exp: i + 1}
	}
	return m
}

// Lookup returns the unit named by symbol. The lookup is case sensitive,
// e.g. "KiB" and "KB" are units but "kb" is not. Returns an error wrapping
// UnknownUnitErr when the symbol is not recognized.
func Lookup(symbol string) (Unit, error) {
	u, ok := units[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", UnknownUnitErr, symbol)
	}
	return u, nil
}
