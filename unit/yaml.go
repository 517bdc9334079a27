// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler using the String rendering.
func (s Size) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using ParseSize. yaml.v3 does not
// honor encoding.TextUnmarshaler, so the hook is spelled out.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}
