package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"World", "world"},
		{"There", "there"},
		{"OrderID", "order_id"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},
		{"lowercase", "lowercase"},
		{"A", "a"},
		{"", ""},
		{"Already_Split", "already_split"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Snake(tt.in))
		})
	}
}

func TestSnake_KeywordEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Type", "type_"},
		{"Func", "func_"},
		{"Range", "range_"},
		{"Map", "map_"},
		{"Default", "default_"},
		// Not keywords after casing, no escape.
		{"TypeName", "type_name"},
		{"Types", "types"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Snake(tt.in), "Snake(%q)", tt.in)
	}
}

// Distinct variant identifiers must never collide after casing and escaping.
// (True collisions such as OrderID vs OrderId are rejected by the classifier,
// not silently merged here.)
func TestSnake_InjectivePerSchema(t *testing.T) {
	variants := []string{"World", "There", "Type", "TypeName", "OrderID", "Order"}

	seen := map[string]bool{}
	for _, v := range variants {
		got := Snake(v)
		assert.False(t, seen[got], "collision on %q -> %q", v, got)
		seen[got] = true
	}
}
