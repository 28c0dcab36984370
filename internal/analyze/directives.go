package analyze

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"

	"variants-generator/internal/schema"
)

// directivePrefix marks a comment line as a generator directive.
const directivePrefix = "//variants:"

// generateDirective triggers generation for the annotated declaration. It is
// the switch, not a customization, so it never appears in the raw list.
const generateDirective = "generate"

// parseDirectives extracts the raw directives from a doc comment and reports
// whether the generate trigger is present.
//
// Directive syntax is one per line, stringer-style:
//
//	//variants:generate
//	//variants:name SomeOtherName
//	//variants:derive Clone, String
func parseDirectives(doc *ast.CommentGroup, fset *token.FileSet) ([]schema.RawDirective, bool) {
	if doc == nil {
		return nil, false
	}

	var (
		directives []schema.RawDirective
		generate   bool
	)

	for _, comment := range doc.List {
		rest, ok := strings.CutPrefix(comment.Text, directivePrefix)
		if !ok {
			continue
		}

		name, args := splitDirective(rest)
		if name == "" {
			continue
		}

		if name == generateDirective {
			generate = true

			continue
		}

		directives = append(directives, schema.RawDirective{
			Name: name,
			Args: args,
			Pos:  fset.Position(comment.Pos()),
		})
	}

	return directives, generate
}

// splitDirective splits "derive Clone, String" into its name and arguments.
// Arguments are separated by commas, whitespace, or both.
func splitDirective(s string) (string, []string) {
	s = strings.TrimSpace(s)

	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, nil
	}

	args := strings.FieldsFunc(s[i:], func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	return s[:i], args
}
