package schema

import (
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) ([]UnionSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}

	return f.Schemas(path), nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	if f.Package == "" {
		return nil, fmt.Errorf("schema file must set a package name")
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Schemas converts the file into UnionSchema values. Directives written as
// YAML fields become raw directives so that one merge path serves both the
// YAML and annotated-source front ends.
func (f *File) Schemas(path string) []UnionSchema {
	pos := token.Position{Filename: path}

	var out []UnionSchema

	for _, fu := range f.Unions {
		u := UnionSchema{
			Name:         fu.Union,
			Package:      f.Package,
			ExtraImports: fu.Imports,
			EmitUnion:    true,
			Pos:          pos,
		}

		if fu.Name != "" {
			u.Directives = append(u.Directives, RawDirective{
				Name: DirectiveName, Args: []string{fu.Name}, Pos: pos,
			})
		}

		if len(fu.Derive) > 0 {
			u.Directives = append(u.Directives, RawDirective{
				Name: DirectiveDerive, Args: fu.Derive, Pos: pos,
			})
		}

		if len(fu.Bounds) > 0 {
			u.Directives = append(u.Directives, RawDirective{
				Name: DirectiveBounds, Args: fu.Bounds, Pos: pos,
			})
		}

		for _, fv := range fu.Variants {
			v := VariantSpec{
				Name:          fv.Name,
				FieldOverride: fv.Field,
				Pos:           pos,
			}

			if fv.Key != "" {
				v.Arity = 1
				v.KeyType = fv.Key
				v.KeyField = "Key"
			}

			u.Variants = append(u.Variants, v)
		}

		out = append(out, u)
	}

	return out
}
