package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variants-generator/internal/plan"
	"variants-generator/internal/schema"
)

// generate builds the plan for a schema and renders it.
func generate(t *testing.T, u *schema.UnionSchema) string {
	t.Helper()

	p, diags := plan.Build(u)
	require.False(t, diags.HasErrors(), "plan diagnostics: %v", diags.Error())

	files, err := NewGenerator(Config{}).Generate([]*plan.RecordPlan{p})
	require.NoError(t, err)
	require.Len(t, files, 1)

	return string(files[0].Content)
}

func TestGenerate_TwoDirectVariants(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Hello",
		Package: "hello",
		Variants: []schema.VariantSpec{
			{Name: "World"},
			{Name: "There"},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "package hello")
	assert.Contains(t, content, "type HelloStruct[T any] struct {")
	assert.Contains(t, content, "world T")
	assert.Contains(t, content, "there T")
	assert.Contains(t, content, "func NewHelloStruct[T any](world T, there T) *HelloStruct[T] {")
	assert.Contains(t, content, "func (s *HelloStruct[T]) GetUnchecked(v Hello) T {")
	assert.Contains(t, content, "func (s *HelloStruct[T]) GetMutUnchecked(v Hello) *T {")
	assert.Contains(t, content, "func (s *HelloStruct[T]) Get(v Hello) (T, bool) {")
	assert.Contains(t, content, "func (s *HelloStruct[T]) GetMut(v Hello) (*T, bool) {")
	assert.Contains(t, content, "case World:")
	assert.Contains(t, content, "case There:")
	assert.Contains(t, content, "return s.world")
	// No keyed slot, no map storage anywhere.
	assert.NotContains(t, content, "map[")
}

func TestGenerate_KeyedVariant(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Hello",
		Package: "hello",
		Variants: []schema.VariantSpec{
			{Name: "World"},
			{Name: "There", Arity: 1, KeyType: "int", KeyField: "Code"},
		},
	}

	content := generate(t, u)

	// Constructor takes only the direct slot.
	assert.Contains(t, content, "func NewHelloStruct[T any](world T) *HelloStruct[T] {")
	assert.Contains(t, content, "there map[int]*T")
	assert.Contains(t, content, "there: make(map[int]*T)")
	assert.Contains(t, content, "p, ok := s.there[v.Code]")
	assert.Contains(t, content, `panic(fmt.Sprintf("HelloStruct: no value for Hello variant There key %v", v.Code))`)
	assert.Contains(t, content, "s.there[v.Code] = &value")
}

func TestGenerate_KeywordVariantEscaped(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Token",
		Package: "token",
		Variants: []schema.VariantSpec{
			{Name: "Type"},
			{Name: "Ident"},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "type_ T")
	assert.Contains(t, content, "func NewTokenStruct[T any](type_ T, ident T) *TokenStruct[T] {")
	assert.Contains(t, content, "return s.type_")
}

// bounds and derive are independent: a bound constrains T without attaching
// any method, and a derive attaches a method without constraining T.
func TestGenerate_BoundsWithoutDerive(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Hello",
		Package: "hello",
		Variants: []schema.VariantSpec{
			{Name: "World"},
		},
		Directives: []schema.RawDirective{
			{Name: schema.DirectiveBounds, Args: []string{"comparable"}},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "type HelloStruct[T comparable] struct {")
	assert.Contains(t, content, "func NewHelloStruct[T comparable](world T)")
	assert.NotContains(t, content, "func (s *HelloStruct[T]) Clone()")
}

func TestGenerate_DeriveWithoutBounds(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Hello",
		Package: "hello",
		Variants: []schema.VariantSpec{
			{Name: "World"},
			{Name: "There", Arity: 1, KeyType: "int", KeyField: "Code"},
		},
		Directives: []schema.RawDirective{
			{Name: schema.DirectiveDerive, Args: []string{"Clone", "String"}},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "type HelloStruct[T any] struct {")
	assert.Contains(t, content, "func (s *HelloStruct[T]) Clone() *HelloStruct[T] {")
	assert.Contains(t, content, "func (s *HelloStruct[T]) String() string {")
	assert.Contains(t, content, `"HelloStruct{world: %v, there: %v}"`)
}

func TestGenerate_JSONDerive(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Asdf",
		Package: "asdf",
		Variants: []schema.VariantSpec{
			{Name: "Zxcv"},
			{Name: "Qwer"},
		},
		Directives: []schema.RawDirective{
			{Name: schema.DirectiveDerive, Args: []string{"JSON"}},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, `"encoding/json"`)
	assert.Contains(t, content, "func (s *AsdfStruct[T]) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, content, "func (s *AsdfStruct[T]) UnmarshalJSON(data []byte) error {")
	assert.Contains(t, content, "buf.WriteString(`\"zxcv\":`)")
	assert.Contains(t, content, "buf.WriteString(`\"qwer\":`)")
}

func TestGenerate_Rename(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "NotThisName",
		Package: "other",
		Variants: []schema.VariantSpec{
			{Name: "Hi"},
		},
		Directives: []schema.RawDirective{
			{Name: schema.DirectiveName, Args: []string{"SomeOtherName"}},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "type SomeOtherName[T any] struct {")
	assert.Contains(t, content, "func NewSomeOtherName[T any](hi T)")
	assert.NotContains(t, content, "NotThisNameStruct")
}

func TestGenerate_EmitUnion(t *testing.T) {
	u := &schema.UnionSchema{
		Name:      "Hello",
		Package:   "hello",
		EmitUnion: true,
		Variants: []schema.VariantSpec{
			{Name: "World"},
			{Name: "There", Arity: 1, KeyType: "int", KeyField: "Key"},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "type Hello interface{ isHello() }")
	assert.Contains(t, content, "type World struct{}")
	assert.Contains(t, content, "func (World) isHello() {}")
	assert.Contains(t, content, "Key int")
	assert.Contains(t, content, "func (There) isHello() {}")
}

func TestGenerate_SelfKeyedVariant(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Wire",
		Package: "wire",
		Variants: []schema.VariantSpec{
			{Name: "Port", SelfKeyed: true, KeyType: "Port"},
		},
	}

	content := generate(t, u)

	assert.Contains(t, content, "port map[Port]*T")
	assert.Contains(t, content, "p, ok := s.port[v]")
}

func TestGenerate_ZeroVariants(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Empty",
		Package: "empty",
	}

	content := generate(t, u)

	assert.Contains(t, content, "type EmptyStruct[T any] struct")
	assert.Contains(t, content, "func NewEmptyStruct[T any]() *EmptyStruct[T] {")
	// No variants, no dispatch, no fmt import.
	assert.NotContains(t, content, "GetUnchecked")
	assert.NotContains(t, content, `"fmt"`)
}

func TestGenerate_FileTargets(t *testing.T) {
	u := &schema.UnionSchema{
		Name:    "Hello",
		Package: "hello",
		Dir:     "example/hello",
		Variants: []schema.VariantSpec{
			{Name: "World"},
		},
	}

	p, diags := plan.Build(u)
	require.False(t, diags.HasErrors())

	files, err := NewGenerator(Config{}).Generate([]*plan.RecordPlan{p})
	require.NoError(t, err)
	assert.Equal(t, "hello_variants.go", files[0].Filename)
	assert.Equal(t, "example/hello/hello_variants.go", files[0].Path())

	// An explicit output dir overrides the package dir.
	files, err = NewGenerator(Config{OutputDir: "out"}).Generate([]*plan.RecordPlan{p})
	require.NoError(t, err)
	assert.Equal(t, "out/hello_variants.go", files[0].Path())
}
