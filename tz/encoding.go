package tz

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. The text is the canonical
// name.
func (z *TimeZone) MarshalText() ([]byte, error) {
	return []byte(z.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (z *TimeZone) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (z *TimeZone) MarshalYAML() (any, error) {
	return z.Name(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar.
func (z *TimeZone) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar, got %v", ErrInvalidZone, node.Line, kindName(node.Kind))
	}
	return z.UnmarshalText([]byte(node.Value))
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
