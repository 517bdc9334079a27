// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"fmt"
	"strconv"
)

// ParseSize parses a size string of the form `<number><symbol>`, e.g.
// "64KiB", "1.5MB" or plain "1048576" for a raw byte count. The symbol must
// be one of the unit table symbols, case sensitive, with no space between the
// number and the symbol. Fails with InvalidSizeErr when the numeric part is
// malformed, UnknownUnitErr when the suffix is not a unit and
// InvalidMagnitudeErr when the number is negative.
func ParseSize(s string) (Size, error) {
	split := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E' {
			split = i
			break
		}
		// An exponent marker only belongs to the number when followed by a
		// digit or a sign, otherwise it starts a unit symbol like "EiB".
		if r == 'e' || r == 'E' {
			if i+1 >= len(s) || !isExponentStart(s[i+1]) {
				split = i
				break
			}
		}
	}

	mag, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", InvalidSizeErr, s)
	}

	symbol := s[split:]
	if symbol == "" {
		return FromBytes(mag)
	}
	return New(mag, symbol)
}

func isExponentStart(c byte) bool {
	return c == '+' || c == '-' || (c >= '0' && c <= '9')
}

// MarshalText implements encoding.TextMarshaler using the String rendering.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseSize, which
// lets sizes be read directly from json or yaml configuration and from cli
// flags.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
