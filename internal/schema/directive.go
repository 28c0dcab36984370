package schema

import (
	"fmt"

	"variants-generator/internal/diagnostic"
)

// Resolve merges a union's raw directives into a Directives value.
//
// Merge policy:
//   - name: first occurrence wins; a later occurrence with a different value
//     produces a warning.
//   - derive, bounds: occurrences concatenate in source order, duplicates
//     preserved.
//   - unrecognized names are ignored with an info diagnostic, so future
//     directives do not break older generators.
func Resolve(u *UnionSchema) (Directives, diagnostic.Diagnostics) {
	var (
		out   Directives
		diags diagnostic.Diagnostics
	)

	for _, raw := range u.Directives {
		switch raw.Name {
		case DirectiveName:
			resolveName(&out, raw, u.Name, &diags)

		case DirectiveDerive:
			if requireArgs(raw, u.Name, &diags) {
				out.Derives = append(out.Derives, raw.Args...)
			}

		case DirectiveBounds:
			if requireArgs(raw, u.Name, &diags) {
				out.Bounds = append(out.Bounds, raw.Args...)
			}

		default:
			diags.AddInfo(diagnostic.CodeUnknownDirective,
				fmt.Sprintf("directive %q is not recognized and was ignored", raw.Name),
				u.Name, "", raw.Pos)
		}
	}

	return out, diags
}

func resolveName(out *Directives, raw RawDirective, union string, diags *diagnostic.Diagnostics) {
	if len(raw.Args) != 1 {
		diags.AddError(diagnostic.CodeBadDirectiveArgs,
			fmt.Sprintf("name takes exactly one identifier, got %d arguments", len(raw.Args)),
			union, "", raw.Pos)

		return
	}

	name := raw.Args[0]

	if out.RecordName == "" {
		out.RecordName = name

		return
	}

	if out.RecordName != name {
		diags.AddWarning(diagnostic.CodeRenameConflict,
			fmt.Sprintf("record name already set to %q, ignoring %q", out.RecordName, name),
			union, "", raw.Pos)
	}
}

func requireArgs(raw RawDirective, union string, diags *diagnostic.Diagnostics) bool {
	if len(raw.Args) == 0 {
		diags.AddError(diagnostic.CodeBadDirectiveArgs,
			fmt.Sprintf("%s requires at least one argument", raw.Name),
			union, "", raw.Pos)

		return false
	}

	return true
}
