package schema

import "go/token"

// Directive names recognized on a union declaration. The `variants:` prefix
// is stripped by whichever front end produced the raw directive.
const (
	DirectiveName   = "name"
	DirectiveDerive = "derive"
	DirectiveBounds = "bounds"
	// DirectiveField is a per-variant directive overriding the slot identifier.
	DirectiveField = "field"
)

// RecordSuffix is appended to the union name when no rename directive is given.
const RecordSuffix = "Struct"

// UnionSchema is one tagged-union declaration handed to the engine.
// It is immutable once produced and lives only for one generation pass.
type UnionSchema struct {
	// Name is the declared union name, e.g. "Hello".
	Name string
	// Package is the package the generated code is emitted into.
	Package string
	// Dir is the directory of that package, when known.
	Dir string
	// Variants in declaration order.
	Variants []VariantSpec
	// Directives as written on the declaration, in source order.
	Directives []RawDirective
	// ExtraImports are imports the schema author knows the emitted file needs
	// (key types or bounds from other packages, YAML mode only).
	ExtraImports []string
	// EmitUnion requests emission of the union declaration itself, for
	// schemas described in YAML that do not yet exist in source.
	EmitUnion bool
	// Pos is the source location of the union declaration.
	Pos token.Position
}

// VariantSpec is one variant of a union schema.
type VariantSpec struct {
	// Name is the declared variant identifier, e.g. "There".
	Name string
	// Arity is the number of carried values as declared. Classification
	// accepts 0 or 1 and rejects everything else.
	Arity int
	// KeyType is the Go type expression of the carried value, when Arity is 1.
	KeyType string
	// KeyImports are the import paths KeyType needs, if any.
	KeyImports []string
	// KeyField is the name of the payload field on the variant type, used by
	// the emitted dispatch. Empty for self-keyed variants.
	KeyField string
	// SelfKeyed marks named non-struct variants, which are keyed by their own
	// value rather than by a field.
	SelfKeyed bool
	// FieldOverride replaces the cased slot identifier when set.
	FieldOverride string
	// Pos is the source location of the variant declaration.
	Pos token.Position
}

// RawDirective is one customization directive as written in the source.
type RawDirective struct {
	Name string
	Args []string
	Pos  token.Position
}

// Directives is the resolved configuration for one union.
type Directives struct {
	// RecordName is the output record name; empty means Name + RecordSuffix.
	RecordName string
	// Derives are the derived-method names to attach, in source order,
	// duplicates preserved.
	Derives []string
	// Bounds are the constraints on the record's value-type parameter, in
	// source order.
	Bounds []string
}
