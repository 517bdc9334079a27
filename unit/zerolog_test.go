// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeLogsAsStructuredObject(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := zerolog.New(buf)

	logger.Info().Object("limit", requireSize(t, 1.5, "MiB")).Msg("Quota reached")

	var entry struct {
		Limit struct {
			Magnitude float64 `json:"magnitude"`
			Unit      string  `json:"unit"`
			Bytes     float64 `json:"bytes"`
		} `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, 1.5, entry.Limit.Magnitude)
	assert.Equal(t, "MiB", entry.Limit.Unit)
	assert.Equal(t, 1.5*1024*1024, entry.Limit.Bytes)
}
