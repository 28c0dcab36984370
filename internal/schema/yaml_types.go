package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is a YAML schema description: a set of unions to generate records
// for, in packages where the union types do not exist yet.
type File struct {
	Version string      `yaml:"version"`
	Package string      `yaml:"package"`
	Unions  []FileUnion `yaml:"unions"`
}

// FileUnion describes one union in a schema file.
type FileUnion struct {
	Union    string        `yaml:"union"`
	Name     string        `yaml:"name,omitempty"`
	Derive   StringOrList  `yaml:"derive,omitempty"`
	Bounds   StringOrList  `yaml:"bounds,omitempty"`
	Imports  []string      `yaml:"imports,omitempty"`
	Variants []FileVariant `yaml:"variants"`
}

// FileVariant describes one variant: payload-free unless key is set.
type FileVariant struct {
	Name  string `yaml:"name"`
	Key   string `yaml:"key,omitempty"`
	Field string `yaml:"field,omitempty"`
}

// StringOrList accepts either a single string or a list of strings in YAML.
type StringOrList []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrList.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrList{str}
		} else {
			*s = StringOrList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or list of strings, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrList.
// Outputs a single string if length is 1, otherwise a list.
func (s StringOrList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
