package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"variants-generator/internal/plan"
)

// Config holds configuration for code generation.
type Config struct {
	// OutputDir overrides the output directory for every generated file.
	// Empty means each file is written into its union's package directory.
	OutputDir string
}

// Generator generates Go code from record plans.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "hello_variants.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the file's full path.
func (f GeneratedFile) Path() string {
	return joinPath(f.Dir, f.Filename)
}

// Generate emits one file per record plan.
func (g *Generator) Generate(plans []*plan.RecordPlan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, p := range plans {
		file, err := g.generateRecord(p)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Union, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord renders and formats the file for one union.
func (g *Generator) generateRecord(p *plan.RecordPlan) (*GeneratedFile, error) {
	data := buildTemplateData(p)

	dir := p.Dir
	if g.config.OutputDir != "" {
		dir = g.config.OutputDir
	}

	var buf bytes.Buffer
	if err := recordTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted code in a sidecar file to aid debugging.
		if dir != "" {
			_ = writeDebugUnformatted(dir, data.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

var recordTemplate = template.Must(template.New("record").Parse(`// Code generated by variants-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{- if .Union}}
// {{.Union.Name}} is a tagged union with one variant type per case.
type {{.Union.Name}} interface{ {{.Union.Marker}}() }
{{range .Union.Variants}}
type {{.Name}} struct{{if .KeyType}} { {{.KeyField}} {{.KeyType}} }{{else}}{}{{end}}

func ({{.Name}}) {{$.Union.Marker}}() {}
{{end}}
{{- end}}
// {{.RecordName}} stores one value slot per {{.UnionName}} variant: a plain
// field for payload-free variants and a keyed container for variants that
// carry a value.
type {{.RecordName}}[T {{.Bound}}] struct {
{{range .Slots}}	{{.Name}} {{.FieldType}}
{{end}}}

// {{.Ctor}} returns a record with every direct slot set and every keyed
// slot empty.
func {{.Ctor}}[T {{.Bound}}]({{range $i, $s := .CtorParams}}{{if $i}}, {{end}}{{$s.Name}} T{{end}}) *{{.RecordName}}[T] {
	return &{{.RecordName}}[T]{
{{range .Slots}}{{if .Keyed}}		{{.Name}}: make(map[{{.KeyType}}]*T),
{{else}}		{{.Name}}: {{.Name}},
{{end}}{{end}}	}
}
{{if .HasVariants}}
// GetUnchecked returns the value stored for v. It panics when v is a keyed
// variant whose key was never set; use Get when presence is not guaranteed.
func (s *{{.RecordName}}[T]) GetUnchecked(v {{.UnionName}}) T {
	switch v := v.(type) {
{{range .Slots}}	case {{.Variant}}:
{{if .Keyed}}		p, ok := s.{{.Name}}[{{.KeyExpr}}]
		if !ok {
			panic(fmt.Sprintf("{{$.RecordName}}: no value for {{$.UnionName}} variant {{.Variant}} key %v", {{.KeyExpr}}))
		}
		return *p
{{else}}		return s.{{.Name}}
{{end}}{{end}}	default:
		panic(fmt.Sprintf("{{.RecordName}}: unhandled {{.UnionName}} variant %T", v))
	}
}

// GetMutUnchecked returns a pointer to the value stored for v, with the same
// panic behavior as GetUnchecked.
func (s *{{.RecordName}}[T]) GetMutUnchecked(v {{.UnionName}}) *T {
	switch v := v.(type) {
{{range .Slots}}	case {{.Variant}}:
{{if .Keyed}}		p, ok := s.{{.Name}}[{{.KeyExpr}}]
		if !ok {
			panic(fmt.Sprintf("{{$.RecordName}}: no value for {{$.UnionName}} variant {{.Variant}} key %v", {{.KeyExpr}}))
		}
		return p
{{else}}		return &s.{{.Name}}
{{end}}{{end}}	default:
		panic(fmt.Sprintf("{{.RecordName}}: unhandled {{.UnionName}} variant %T", v))
	}
}

// Get returns the value stored for v. Direct slots always report true; keyed
// slots report false until their key is set.
func (s *{{.RecordName}}[T]) Get(v {{.UnionName}}) (T, bool) {
	switch v := v.(type) {
{{range .Slots}}	case {{.Variant}}:
{{if .Keyed}}		if p, ok := s.{{.Name}}[{{.KeyExpr}}]; ok {
			return *p, true
		}
		var zero T
		return zero, false
{{else}}		return s.{{.Name}}, true
{{end}}{{end}}	default:
		panic(fmt.Sprintf("{{.RecordName}}: unhandled {{.UnionName}} variant %T", v))
	}
}

// GetMut returns a pointer to the value stored for v, or nil and false for a
// keyed slot whose key was never set.
func (s *{{.RecordName}}[T]) GetMut(v {{.UnionName}}) (*T, bool) {
	switch v := v.(type) {
{{range .Slots}}	case {{.Variant}}:
{{if .Keyed}}		p, ok := s.{{.Name}}[{{.KeyExpr}}]
		return p, ok
{{else}}		return &s.{{.Name}}, true
{{end}}{{end}}	default:
		panic(fmt.Sprintf("{{.RecordName}}: unhandled {{.UnionName}} variant %T", v))
	}
}

// Set stores value for v, replacing any previous value.
func (s *{{.RecordName}}[T]) Set(v {{.UnionName}}, value T) {
	switch v := v.(type) {
{{range .Slots}}	case {{.Variant}}:
{{if .Keyed}}		if s.{{.Name}} == nil {
			s.{{.Name}} = make(map[{{.KeyType}}]*T)
		}
		s.{{.Name}}[{{.KeyExpr}}] = &value
{{else}}		s.{{.Name}} = value
{{end}}{{end}}	default:
		panic(fmt.Sprintf("{{.RecordName}}: unhandled {{.UnionName}} variant %T", v))
	}
}
{{end}}{{if .DeriveClone}}
// Clone returns a copy of the record. Keyed slots are copied entry by entry.
func (s *{{.RecordName}}[T]) Clone() *{{.RecordName}}[T] {
	out := &{{.RecordName}}[T]{
{{range .Slots}}{{if .Keyed}}		{{.Name}}: make(map[{{.KeyType}}]*T, len(s.{{.Name}})),
{{else}}		{{.Name}}: s.{{.Name}},
{{end}}{{end}}	}
{{range .Slots}}{{if .Keyed}}	for k, p := range s.{{.Name}} {
		v := *p
		out.{{.Name}}[k] = &v
	}
{{end}}{{end}}	return out
}
{{end}}{{if .DeriveString}}
// String implements fmt.Stringer. Keyed slots print by value.
func (s *{{.RecordName}}[T]) String() string {
{{range .Slots}}{{if .Keyed}}	{{.Name}} := make(map[{{.KeyType}}]T, len(s.{{.Name}}))
	for k, p := range s.{{.Name}} {
		{{.Name}}[k] = *p
	}
{{end}}{{end}}	return fmt.Sprintf({{.StringFormat}}{{range .StringArgs}}, {{.}}{{end}})
}
{{end}}{{if .DeriveJSON}}
// MarshalJSON implements json.Marshaler with slot identifiers as keys, in
// declaration order.
func (s *{{.RecordName}}[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
{{range $i, $s := .Slots}}{{if $i}}	buf.WriteByte(',')
{{end}}	buf.WriteString(` + "`" + `"{{$s.Name}}":` + "`" + `)
	{{$s.JSONVar}}, err := json.Marshal(s.{{$s.Name}})
	if err != nil {
		return nil, err
	}
	buf.Write({{$s.JSONVar}})
{{end}}	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Absent keys leave their slots
// untouched.
func (s *{{.RecordName}}[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
{{range .Slots}}	if b, ok := raw["{{.Name}}"]; ok {
		if err := json.Unmarshal(b, &s.{{.Name}}); err != nil {
			return err
		}
	}
{{end}}	return nil
}
{{end}}`))
