// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"github.com/optable/sizelib/unit"
)

type (
	// SizeLimit is a struct that can be embedded in any kong cli to accept a
	// storage size limit. The flag value uses the unit size language, e.g.
	// "64KiB", "1.5MB" or a plain byte count.
	//
	// In order to read the limit, one should use the accessor like this:
	// ```
	// limit, err := cli.SizeLimit.Size(fallback)
	// ```
	SizeLimit struct {
		Limit string `opt:"" default:"" help:"Maximum size, e.g. 64KiB, 1.5MB or a byte count."`
	}
)

// Size parses the limit flag. It returns the fallback when the flag was left
// unset.
func (l *SizeLimit) Size(fallback unit.Size) (unit.Size, error) {
	if l.Limit == "" {
		return fallback, nil
	}
	return unit.ParseSize(l.Limit)
}
