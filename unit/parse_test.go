// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSize(t *testing.T) {
	s, err := ParseSize("64KiB")
	require.NoError(t, err)
	assert.Equal(t, 64.0, s.Magnitude())
	assert.Equal(t, "KiB", s.Unit().Symbol)

	s, err = ParseSize("1.5MB")
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.Magnitude())
	assert.Equal(t, "MB", s.Unit().Symbol)

	// A bare number is a byte count.
	s, err = ParseSize("1048576")
	require.NoError(t, err)
	assert.Equal(t, "B", s.Unit().Symbol)
	assert.Equal(t, 1048576.0, s.Bytes())
}

func TestParseSizeExponents(t *testing.T) {
	// An exponent marker belongs to the number only when followed by a digit
	// or a sign; otherwise it starts a unit symbol.
	s, err := ParseSize("1e6B")
	require.NoError(t, err)
	assert.Equal(t, 1e6, s.Bytes())

	s, err = ParseSize("2EiB")
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Magnitude())
	assert.Equal(t, "EiB", s.Unit().Symbol)

	s, err = ParseSize("3EB")
	require.NoError(t, err)
	assert.Equal(t, "EB", s.Unit().Symbol)
}

func TestParseSizeFailures(t *testing.T) {
	for _, input := range []string{"", "B", "KiB", "1.2.3B", "one MiB"} {
		_, err := ParseSize(input)
		assert.ErrorIs(t, err, InvalidSizeErr, input)
	}

	_, err := ParseSize("4XB")
	assert.ErrorIs(t, err, UnknownUnitErr)

	_, err = ParseSize("1 KiB")
	assert.ErrorIs(t, err, UnknownUnitErr, "no space between number and unit")

	_, err = ParseSize("-5B")
	assert.ErrorIs(t, err, InvalidMagnitudeErr)
}

func TestParseSizeRoundTripsString(t *testing.T) {
	for _, input := range []string{"1.5MiB", "1024B", "0.25GB", "1048576B"} {
		s, err := ParseSize(input)
		require.NoError(t, err)
		assert.Equal(t, input, s.String())
	}
}

func TestSizeFromJSONConfig(t *testing.T) {
	var config struct {
		MaxUpload Size `json:"max_upload"`
		Quota     Size `json:"quota"`
	}

	raw := `{"max_upload": "64KiB", "quota": "1.5GB"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &config))

	assert.Equal(t, 64.0, config.MaxUpload.Magnitude())
	assert.Equal(t, "KiB", config.MaxUpload.Unit().Symbol)
	assert.True(t, config.Quota.Equal(requireSize(t, 1.5, "GB")))

	encoded, err := json.Marshal(config)
	require.NoError(t, err)
	assert.JSONEq(t, `{"max_upload":"64KiB","quota":"1.5GB"}`, string(encoded))
}

func TestSizeFromYAMLConfig(t *testing.T) {
	var config struct {
		CacheSize Size `yaml:"cache_size"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("cache_size: 512MiB\n"), &config))
	assert.True(t, config.CacheSize.Equal(requireSize(t, 512, "MiB")))

	var bad struct {
		CacheSize Size `yaml:"cache_size"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("cache_size: 512XiB\n"), &bad))
}
