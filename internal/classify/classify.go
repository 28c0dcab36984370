package classify

import (
	"fmt"

	"variants-generator/internal/casing"
	"variants-generator/internal/diagnostic"
	"variants-generator/internal/schema"
)

// SlotKind says how a variant's slot is stored in the generated record.
type SlotKind int

const (
	// SlotDirect is a plain field of the value type; a value is always present.
	SlotDirect SlotKind = iota
	// SlotKeyed is an associative container keyed by the variant's payload;
	// presence of a value for a given key is not guaranteed.
	SlotKeyed
)

// String returns a human-readable kind name.
func (k SlotKind) String() string {
	switch k {
	case SlotDirect:
		return "direct"
	case SlotKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// ClassifiedVariant is a VariantSpec with its slot kind and computed slot
// identifier.
type ClassifiedVariant struct {
	Spec schema.VariantSpec
	Kind SlotKind
	// Slot is the snake_case field identifier, keyword-escaped, with any
	// per-variant override applied.
	Slot string
}

// Variants classifies every variant of the union, in declaration order.
//
// Arity 0 maps to a direct slot, arity 1 to a keyed slot. Anything else is
// an error, and the whole pass fails: the generator never emits a record
// for a union it only partially understands. Slot identifiers must come out
// unique; the key type itself is only required to be a valid map key, which
// the host compiler checks on the emitted code.
func Variants(u *schema.UnionSchema) ([]ClassifiedVariant, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	out := make([]ClassifiedVariant, 0, len(u.Variants))
	bySlot := make(map[string]string, len(u.Variants))

	for _, v := range u.Variants {
		cv := ClassifiedVariant{Spec: v, Slot: slotIdent(v)}

		switch {
		case v.Arity == 0 && !v.SelfKeyed:
			cv.Kind = SlotDirect

		case v.Arity == 1 || v.SelfKeyed:
			cv.Kind = SlotKeyed

		default:
			diags.AddError(diagnostic.CodeInvalidVariantShape,
				fmt.Sprintf("variant carries %d values, want 0 or 1", v.Arity),
				u.Name, v.Name, v.Pos)

			continue
		}

		if prev, ok := bySlot[cv.Slot]; ok {
			diags.AddError(diagnostic.CodeDuplicateSlot,
				fmt.Sprintf("slot identifier %q collides with variant %s", cv.Slot, prev),
				u.Name, v.Name, v.Pos)

			continue
		}

		bySlot[cv.Slot] = v.Name
		out = append(out, cv)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return out, diags
}

// slotIdent computes the slot identifier for a variant. An explicit override
// is taken as written, except that keywords are still escaped.
func slotIdent(v schema.VariantSpec) string {
	if v.FieldOverride != "" {
		return casing.EscapeKeyword(v.FieldOverride)
	}

	return casing.Snake(v.Name)
}
