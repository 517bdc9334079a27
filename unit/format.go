// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is a parsed format specifier. The grammar is `[width]unit` where
// width is an optional run of decimal digits giving the minimum field width
// and unit selects the output unit. The unit is either a full symbol from the
// unit table ("B", "KiB".."EiB", "KB".."EB") or a bare prefix letter
// ("K".."E") that picks the prefix in the rendered size's own base, the "i"
// being implicit. Sign flags are rejected since sizes are never negative.
type Spec struct {
	// Width is the minimum field width; the rendering is left-padded with
	// spaces up to it and simply expands beyond it, it never truncates.
	Width int

	// Unit is the unit portion of the specifier, either a full symbol or a
	// bare prefix letter.
	Unit string
}

const prefixLetters = "KMGTPE"

// ownBase reports whether the unit portion is a bare prefix letter, along
// with its exponent.
func (sp Spec) ownBase() (int, bool) {
	if len(sp.Unit) != 1 {
		return 0, false
	}
	i := strings.IndexByte(prefixLetters, sp.Unit[0])
	if i == -1 {
		return 0, false
	}
	return i + 1, true
}

// ParseSpec parses a format specifier. Fails with UnsupportedFormatSpecErr
// when the specifier contains a sign flag or a space, has no unit portion or
// has a malformed width, and with UnknownUnitErr when the unit portion is not
// a known symbol or prefix letter.
func ParseSpec(spec string) (Spec, error) {
	if strings.ContainsAny(spec, "+- ") {
		return Spec{}, fmt.Errorf("%w: sign flags and spaces are not accepted: %q", UnsupportedFormatSpecErr, spec)
	}

	digits := 0
	for digits < len(spec) && spec[digits] >= '0' && spec[digits] <= '9' {
		digits++
	}

	width := 0
	if digits > 0 {
		var err error
		if width, err = strconv.Atoi(spec[:digits]); err != nil {
			return Spec{}, fmt.Errorf("%w: malformed width in %q", UnsupportedFormatSpecErr, spec)
		}
	}

	symbol := spec[digits:]
	if symbol == "" {
		return Spec{}, fmt.Errorf("%w: missing unit in %q", UnsupportedFormatSpecErr, spec)
	}

	parsed := Spec{Width: width, Unit: symbol}
	if _, ok := parsed.ownBase(); !ok {
		if _, err := Lookup(symbol); err != nil {
			return Spec{}, err
		}
	}

	return parsed, nil
}

// Render formats the size according to the `[width]unit` specifier, see Spec.
// The magnitude is converted to the requested unit and written in fixed point
// notation with one decimal place, never in scientific notation, whatever the
// magnitude. A zero size renders as "0.0" and quantities beyond the exa
// prefixes render as oversized numbers in the requested unit.
func (s Size) Render(spec string) (string, error) {
	parsed, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}

	var n float64
	if exp, ok := parsed.ownBase(); ok {
		n = s.inOwnBase(exp)
	} else if n, err = s.To(parsed.Unit); err != nil {
		return "", err
	}

	out := strconv.FormatFloat(n, 'f', 1, 64)
	if pad := parsed.Width - len(out); pad > 0 {
		out = strings.Repeat(" ", pad) + out
	}
	return out, nil
}
