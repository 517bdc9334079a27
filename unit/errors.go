// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import "errors"

// All failures are programmer or input errors surfaced synchronously at the
// violating call; nothing is retried and no partial result is produced.
// Callers match them with errors.Is since the returned errors wrap these
// sentinels with context.
var (
	// InvalidMagnitudeErr is returned when a negative magnitude is supplied
	// to a constructor or would result from a subtraction.
	InvalidMagnitudeErr = errors.New("Invalid magnitude")

	// UnknownUnitErr is returned when a unit symbol is not part of the unit
	// table, whether from construction, a conversion target or a format
	// specifier.
	UnknownUnitErr = errors.New("Unknown unit")

	// UnsupportedFormatSpecErr is returned when a format specifier contains a
	// sign flag or otherwise violates the restricted grammar.
	UnsupportedFormatSpecErr = errors.New("Unsupported format specifier")

	// InvalidSizeErr is returned by ParseSize when the numeric part of a size
	// string cannot be parsed.
	InvalidSizeErr = errors.New("Invalid size")
)
