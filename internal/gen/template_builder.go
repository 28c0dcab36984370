package gen

import (
	"fmt"
	"strings"

	"variants-generator/internal/classify"
	"variants-generator/internal/common"
	"variants-generator/internal/plan"
)

// templateData holds all data needed for the record template.
type templateData struct {
	Filename    string
	PackageName string
	Imports     []string
	// Union is set when the union declaration itself is emitted (YAML mode).
	Union        *unionDeclData
	UnionName    string
	RecordName   string
	Bound        string
	Ctor         string
	Slots        []slotData
	CtorParams   []slotData
	HasVariants  bool
	DeriveClone  bool
	DeriveString bool
	DeriveJSON   bool
	// StringFormat is the quoted fmt string for the String derive;
	// StringArgs are the matching argument expressions.
	StringFormat string
	StringArgs   []string
}

// slotData is one record field as the template sees it.
type slotData struct {
	Name      string
	FieldType string
	Variant   string
	Keyed     bool
	KeyType   string
	// KeyExpr is the dispatch expression for the key: "v.Code" for a payload
	// field, "v" for self-keyed variants.
	KeyExpr string
	// JSONVar is a collision-free local for the JSON derive.
	JSONVar string
}

// unionDeclData describes the union declaration emitted in YAML mode.
type unionDeclData struct {
	Name     string
	Marker   string
	Variants []unionVariantData
}

type unionVariantData struct {
	Name     string
	KeyField string
	KeyType  string
}

// buildTemplateData constructs the template data from a record plan.
func buildTemplateData(p *plan.RecordPlan) *templateData {
	data := &templateData{
		Filename:     p.Filename,
		PackageName:  p.Package,
		UnionName:    p.Union,
		RecordName:   p.RecordName,
		Bound:        p.Bound,
		Ctor:         "New" + p.RecordName,
		HasVariants:  len(p.Slots) > 0,
		DeriveClone:  p.Derive(plan.DeriveClone),
		DeriveString: p.Derive(plan.DeriveString),
		DeriveJSON:   p.Derive(plan.DeriveJSON),
	}

	for _, s := range p.Slots {
		data.Slots = append(data.Slots, buildSlot(s))
	}

	for _, s := range p.CtorParams {
		data.CtorParams = append(data.CtorParams, buildSlot(s))
	}

	if p.EmitUnion {
		data.Union = buildUnionDecl(p)
	}

	if data.DeriveString {
		data.StringFormat, data.StringArgs = buildStringFormat(data)
	}

	data.Imports = collectImports(p, data)

	return data
}

// buildSlot maps a planned slot to its template form.
func buildSlot(s plan.Slot) slotData {
	sd := slotData{
		Name:      s.Name,
		FieldType: "T",
		Variant:   s.Variant,
		JSONVar:   jsonVar(s.Name),
	}

	if s.Kind == classify.SlotKeyed {
		sd.Keyed = true
		sd.KeyType = s.KeyType
		sd.FieldType = fmt.Sprintf("map[%s]*T", s.KeyType)

		sd.KeyExpr = "v"
		if s.KeyField != "" {
			sd.KeyExpr = "v." + s.KeyField
		}
	}

	return sd
}

// jsonVar derives a local variable name from a slot identifier. Trailing
// escape underscores fold into the suffix, so "type_" becomes "typeJSON".
func jsonVar(slot string) string {
	return strings.TrimSuffix(slot, "_") + "JSON"
}

// buildUnionDecl describes the union interface and variant types for schemas
// that exist only in YAML.
func buildUnionDecl(p *plan.RecordPlan) *unionDeclData {
	decl := &unionDeclData{
		Name:   p.Union,
		Marker: "is" + p.Union,
	}

	for _, s := range p.Slots {
		v := unionVariantData{Name: s.Variant}
		if s.Kind == classify.SlotKeyed {
			v.KeyField = s.KeyField
			v.KeyType = s.KeyType
		}

		decl.Variants = append(decl.Variants, v)
	}

	return decl
}

// buildStringFormat precomputes the Sprintf format and arguments for the
// String derive. Keyed slots print through by-value locals prepared in the
// method body.
func buildStringFormat(data *templateData) (string, []string) {
	var (
		parts []string
		args  []string
	)

	for _, s := range data.Slots {
		parts = append(parts, s.Name+": %v")

		if s.Keyed {
			args = append(args, s.Name)
		} else {
			args = append(args, "s."+s.Name)
		}
	}

	format := fmt.Sprintf("%q", data.RecordName+"{"+strings.Join(parts, ", ")+"}")

	return format, args
}

// collectImports merges the plan's schema-driven imports with the stdlib
// imports the emitted bodies need.
func collectImports(p *plan.RecordPlan, data *templateData) []string {
	imports := map[string]bool{}
	for _, imp := range p.Imports {
		imports[imp] = true
	}

	// Accessor panics and the String derive format through fmt.
	if data.HasVariants || data.DeriveString {
		imports["fmt"] = true
	}

	if data.DeriveJSON {
		imports["bytes"] = true
		imports["encoding/json"] = true
	}

	return common.SortedKeys(imports)
}
