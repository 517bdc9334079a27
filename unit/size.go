// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"fmt"
	"math"
	"strconv"
)

// Size is an immutable storage quantity: a non-negative magnitude expressed
// in a unit. The base (binary or decimal) is fixed by the unit the Size was
// constructed with; deriving a Size in another unit produces a new value.
// Sizes are safe for concurrent use since they are never mutated.
type Size struct {
	mag  float64
	unit Unit
}

// New creates a Size of magnitude expressed in the unit named by symbol.
// Fails with InvalidMagnitudeErr when magnitude is negative (or NaN) and with
// UnknownUnitErr when the symbol is not recognized.
func New(magnitude float64, symbol string) (Size, error) {
	if magnitude < 0 || math.IsNaN(magnitude) {
		return Size{}, fmt.Errorf("%w: %v", InvalidMagnitudeErr, magnitude)
	}

	u, err := Lookup(symbol)
	if err != nil {
		return Size{}, err
	}

	return Size{mag: magnitude, unit: u}, nil
}

// FromBytes creates a Size from a raw byte count. Byte-constructed sizes use
// the binary base for own-base conversions.
func FromBytes(n float64) (Size, error) {
	return New(n, "B")
}

// Magnitude returns the quantity expressed in the Size's own unit.
func (s Size) Magnitude() float64 {
	return s.mag
}

// Unit returns the unit the Size was constructed with.
func (s Size) Unit() Unit {
	return s.unit
}

// Bytes returns the quantity expressed in bytes.
func (s Size) Bytes() float64 {
	return s.mag * s.unit.Scale()
}

// To returns the quantity expressed in the unit named by symbol. Conversion
// goes through bytes, so converting across bases works with the usual
// floating point rounding. Fails with UnknownUnitErr when the symbol is not
// recognized.
func (s Size) To(symbol string) (float64, error) {
	u, err := Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return s.Bytes() / u.Scale(), nil
}

// Convert returns a new Size holding the same quantity expressed in the unit
// named by symbol. The receiver is left untouched.
func (s Size) Convert(symbol string) (Size, error) {
	u, err := Lookup(symbol)
	if err != nil {
		return Size{}, err
	}
	return Size{mag: s.Bytes() / u.Scale(), unit: u}, nil
}

// inOwnBase returns the quantity at the given prefix exponent of the Size's
// own base, e.g. exp 2 is MiB for binary sizes and MB for decimal ones.
func (s Size) inOwnBase(exp int) float64 {
	return s.Bytes() / math.Pow(float64(s.unit.Base), float64(exp))
}

// ToK returns the quantity in KiB or KB, depending on the Size's base.
func (s Size) ToK() float64 { return s.inOwnBase(1) }

// ToM returns the quantity in MiB or MB, depending on the Size's base.
func (s Size) ToM() float64 { return s.inOwnBase(2) }

// ToG returns the quantity in GiB or GB, depending on the Size's base.
func (s Size) ToG() float64 { return s.inOwnBase(3) }

// ToT returns the quantity in TiB or TB, depending on the Size's base.
func (s Size) ToT() float64 { return s.inOwnBase(4) }

// ToP returns the quantity in PiB or PB, depending on the Size's base.
func (s Size) ToP() float64 { return s.inOwnBase(5) }

// ToE returns the quantity in EiB or EB, depending on the Size's base.
func (s Size) ToE() float64 { return s.inOwnBase(6) }

// Equal reports whether both sizes hold the same number of bytes. Comparison
// is exact on the computed byte counts, so two sizes built in different bases
// are equal exactly when their byte counts coincide, e.g. 1024KiB equals
// 1MiB. No epsilon is applied; cross-base conversions are subject to float
// rounding.
func (s Size) Equal(o Size) bool {
	return s.Bytes() == o.Bytes()
}

// Less reports whether s holds fewer bytes than o.
func (s Size) Less(o Size) bool {
	return s.Bytes() < o.Bytes()
}

// Compare returns -1, 0 or 1 depending on whether s holds fewer, the same or
// more bytes than o.
func (s Size) Compare(o Size) int {
	switch {
	case s.Bytes() < o.Bytes():
		return -1
	case s.Bytes() > o.Bytes():
		return 1
	default:
		return 0
	}
}

// Add returns the sum of both sizes expressed in the receiver's unit.
func (s Size) Add(o Size) Size {
	return Size{mag: s.mag + o.Bytes()/s.unit.Scale(), unit: s.unit}
}

// Sub returns the difference of both sizes expressed in the receiver's unit.
// Fails with InvalidMagnitudeErr when the result would be negative.
func (s Size) Sub(o Size) (Size, error) {
	mag := s.mag - o.Bytes()/s.unit.Scale()
	if mag < 0 {
		return Size{}, fmt.Errorf("%w: %v", InvalidMagnitudeErr, mag)
	}
	return Size{mag: mag, unit: s.unit}, nil
}

// String renders the magnitude followed by the unit symbol, e.g. "1.5MiB".
// The output round-trips through ParseSize.
func (s Size) String() string {
	return strconv.FormatFloat(s.mag, 'f', -1, 64) + s.unit.Symbol
}
