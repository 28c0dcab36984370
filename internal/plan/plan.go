package plan

import (
	"fmt"
	"go/token"
	"strings"

	"variants-generator/internal/casing"
	"variants-generator/internal/classify"
	"variants-generator/internal/common"
	"variants-generator/internal/diagnostic"
	"variants-generator/internal/schema"
)

// Derived-method names the emitter knows how to generate.
const (
	DeriveClone  = "Clone"
	DeriveString = "String"
	DeriveJSON   = "JSON"
)

// TypeParam is the name of the record's value-type parameter.
const TypeParam = "T"

// RecordPlan is everything the emitter needs for one union: the record's
// name and bound, the ordered slot list, the constructor parameters, and the
// schema-driven imports.
type RecordPlan struct {
	// Union is the union type name the record dispatches over.
	Union string
	// Package is the package the file is generated into.
	Package string
	// Dir is the package directory, when known.
	Dir string
	// RecordName of the emitted record type.
	RecordName string
	// Bound is the rendered constraint on the value-type parameter.
	Bound string
	// Slots, one per variant, in declaration order.
	Slots []Slot
	// CtorParams are the direct slots, in their relative declaration order.
	CtorParams []Slot
	// Derives to emit, deduplicated, in first-occurrence order.
	Derives []string
	// Imports the emitted file needs because of bounds, key types, or the
	// schema's own import list. The emitter adds its stdlib imports on top.
	Imports []string
	// EmitUnion requests emission of the union declaration itself.
	EmitUnion bool
	// Filename of the generated file.
	Filename string
}

// Slot is one field of the generated record.
type Slot struct {
	// Name is the slot identifier (snake_case, keyword-escaped).
	Name string
	// Variant is the variant type name this slot belongs to.
	Variant string
	// Kind distinguishes direct from keyed storage.
	Kind classify.SlotKind
	// KeyType is the key type expression for keyed slots.
	KeyType string
	// KeyField is the payload field on the variant type; empty when the
	// variant value is its own key.
	KeyField string
}

// HasKeyed reports whether any slot is keyed.
func (p *RecordPlan) HasKeyed() bool {
	for _, s := range p.Slots {
		if s.Kind == classify.SlotKeyed {
			return true
		}
	}

	return false
}

// Derive reports whether the named derive was requested.
func (p *RecordPlan) Derive(name string) bool {
	for _, d := range p.Derives {
		if d == name {
			return true
		}
	}

	return false
}

// Build resolves directives, classifies variants, and lays out the record.
// Any error diagnostic aborts the plan; no partial plan is returned.
func Build(u *schema.UnionSchema) (*RecordPlan, diagnostic.Diagnostics) {
	directives, diags := schema.Resolve(u)

	cvs, cdiags := classify.Variants(u)
	diags.Merge(cdiags)

	derives := resolveDerives(u.Name, directives.Derives, u.Pos, &diags)

	if diags.HasErrors() {
		return nil, diags
	}

	p := &RecordPlan{
		Union:      u.Name,
		Package:    u.Package,
		Dir:        u.Dir,
		RecordName: directives.RecordName,
		Derives:    derives,
		EmitUnion:  u.EmitUnion,
		Filename:   casing.Snake(u.Name) + "_variants.go",
	}

	if p.RecordName == "" {
		p.RecordName = u.Name + schema.RecordSuffix
	}

	imports := map[string]bool{}
	for _, imp := range u.ExtraImports {
		imports[imp] = true
	}

	p.Bound = renderBound(directives.Bounds, imports)

	for _, cv := range cvs {
		slot := Slot{
			Name:    cv.Slot,
			Variant: cv.Spec.Name,
			Kind:    cv.Kind,
			KeyType: cv.Spec.KeyType,
		}

		if cv.Kind == classify.SlotKeyed {
			if !cv.Spec.SelfKeyed {
				slot.KeyField = cv.Spec.KeyField
			}

			for _, imp := range cv.Spec.KeyImports {
				imports[imp] = true
			}
		}

		p.Slots = append(p.Slots, slot)

		if cv.Kind == classify.SlotDirect {
			p.CtorParams = append(p.CtorParams, slot)
		}
	}

	p.Imports = common.SortedKeys(imports)

	return p, diags
}

// resolveDerives validates derive names against the supported set and drops
// duplicates: the merge preserves them, but emitting the same method twice
// would not compile.
func resolveDerives(union string, requested []string, pos token.Position, diags *diagnostic.Diagnostics) []string {
	var out []string

	seen := map[string]bool{}

	for _, d := range requested {
		switch d {
		case DeriveClone, DeriveString, DeriveJSON:
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}

		default:
			diags.AddError(diagnostic.CodeUnknownDerive,
				fmt.Sprintf("derive %q is not supported (supported: Clone, String, JSON)", d),
				union, "", pos)
		}
	}

	return out
}

// renderBound renders the type-parameter constraint: "any" when no bounds
// were given, the bound itself when there is one, an embedded interface when
// there are several. Qualified bounds with a full import path are rewritten
// to their package alias and the path is collected.
func renderBound(bounds []string, imports map[string]bool) string {
	if len(bounds) == 0 {
		return "any"
	}

	rendered := make([]string, len(bounds))
	for i, b := range bounds {
		rendered[i] = renderBoundExpr(b, imports)
	}

	if len(rendered) == 1 {
		return rendered[0]
	}

	return "interface{ " + strings.Join(rendered, "; ") + " }"
}

// renderBoundExpr handles one bound token. "comparable" and local names pass
// through; "fmt.Stringer" imports fmt; "golang.org/x/exp/constraints.Ordered"
// imports the path and becomes "constraints.Ordered".
func renderBoundExpr(b string, imports map[string]bool) string {
	dot := strings.LastIndex(b, ".")
	if dot < 0 {
		return b
	}

	pkg := b[:dot]
	name := b[dot+1:]

	imports[pkg] = true

	return common.PkgAlias(pkg) + "." + name
}
