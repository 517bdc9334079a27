// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import "github.com/rs/zerolog"

// MarshalZerologObject implements zerolog.LogObjectMarshaler so a Size can be
// logged structurally without losing its unit:
//
//	logger.Info().Object("limit", limit).Msg("Quota reached")
func (s Size) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("magnitude", s.mag).
		Str("unit", s.unit.Symbol).
		Float64("bytes", s.Bytes())
}
