package casing

import (
	"go/token"
	"strings"
	"unicode"
)

// Snake converts a CamelCase identifier to its snake_case slot identifier.
// Word boundaries are lower→upper transitions and the ends of acronym runs.
// Examples:
//   - "World" -> "world"
//   - "OrderID" -> "order_id"
//   - "XMLParser" -> "xml_parser"
//
// If the result is a Go keyword, a trailing underscore is appended so the
// identifier stays legal. No CamelCase identifier can itself end in "_",
// so the escape cannot collide with another converted name. Conversion is
// not injective ("OrderID" and "OrderId" meet at "order_id"); callers
// reject such collisions.
func Snake(s string) string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	out := strings.Join(tokens, "_")
	if token.IsKeyword(out) {
		out += "_"
	}

	return out
}

// EscapeKeyword appends an underscore when s is a Go keyword, leaving any
// other identifier untouched. Used for user-supplied slot identifiers that
// bypass the casing transform.
func EscapeKeyword(s string) string {
	if token.IsKeyword(s) {
		return s + "_"
	}

	return s
}

// tokenize splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Underscores supplied by the user act as explicit boundaries.
		if r == '_' {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if startsNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// startsNewToken determines if a new token should start at position i.
func startsNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// Transition from lowercase (or digit) to uppercase: "orderID" splits before 'I'.
	if isUpper && !isPrevUpper && prev != '_' {
		return true
	}

	// End of an acronym run: "XMLParser" splits before 'P'.
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}
