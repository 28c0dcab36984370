package schema

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variants-generator/internal/diagnostic"
)

func raw(name string, args ...string) RawDirective {
	return RawDirective{Name: name, Args: args, Pos: token.Position{Filename: "hello.go", Line: 1}}
}

func TestResolve_Defaults(t *testing.T) {
	u := &UnionSchema{Name: "Hello"}

	d, diags := Resolve(u)

	require.False(t, diags.HasErrors())
	assert.Empty(t, d.RecordName)
	assert.Empty(t, d.Derives)
	assert.Empty(t, d.Bounds)
}

func TestResolve_RenameFirstWins(t *testing.T) {
	u := &UnionSchema{
		Name: "NotThisName",
		Directives: []RawDirective{
			raw(DirectiveName, "SomeOtherName"),
			raw(DirectiveName, "ThirdName"),
		},
	}

	d, diags := Resolve(u)

	assert.Equal(t, "SomeOtherName", d.RecordName)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeRenameConflict, diags.Warnings[0].Code)
}

func TestResolve_RenameSameValueNoWarning(t *testing.T) {
	u := &UnionSchema{
		Name: "Hello",
		Directives: []RawDirective{
			raw(DirectiveName, "SameName"),
			raw(DirectiveName, "SameName"),
		},
	}

	d, diags := Resolve(u)

	assert.Equal(t, "SameName", d.RecordName)
	assert.Empty(t, diags.Warnings)
}

// Specifying derive(A) then derive(B) must equal a single derive(A, B),
// order preserved, duplicates kept. Same for bounds.
func TestResolve_ConcatenatingDirectives(t *testing.T) {
	split := &UnionSchema{
		Name: "Hello",
		Directives: []RawDirective{
			raw(DirectiveDerive, "Clone"),
			raw(DirectiveDerive, "String", "Clone"),
			raw(DirectiveBounds, "comparable"),
			raw(DirectiveBounds, "fmt.Stringer"),
		},
	}
	joined := &UnionSchema{
		Name: "Hello",
		Directives: []RawDirective{
			raw(DirectiveDerive, "Clone", "String", "Clone"),
			raw(DirectiveBounds, "comparable", "fmt.Stringer"),
		},
	}

	ds, diagsSplit := Resolve(split)
	dj, diagsJoined := Resolve(joined)

	require.False(t, diagsSplit.HasErrors())
	require.False(t, diagsJoined.HasErrors())
	assert.Equal(t, dj, ds)
	assert.Equal(t, []string{"Clone", "String", "Clone"}, ds.Derives)
	assert.Equal(t, []string{"comparable", "fmt.Stringer"}, ds.Bounds)
}

func TestResolve_UnknownDirectiveIgnored(t *testing.T) {
	u := &UnionSchema{
		Name: "Hello",
		Directives: []RawDirective{
			raw("frobnicate", "hard"),
			raw(DirectiveBounds, "comparable"),
		},
	}

	d, diags := Resolve(u)

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeUnknownDirective, diags.Infos[0].Code)
	assert.Equal(t, []string{"comparable"}, d.Bounds)
}

func TestResolve_BadArgs(t *testing.T) {
	u := &UnionSchema{
		Name: "Hello",
		Directives: []RawDirective{
			raw(DirectiveName),
			raw(DirectiveDerive),
		},
	}

	_, diags := Resolve(u)

	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeBadDirectiveArgs, diags.Errors[0].Code)
	assert.Equal(t, diagnostic.CodeBadDirectiveArgs, diags.Errors[1].Code)
}
