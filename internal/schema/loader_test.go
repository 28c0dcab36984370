package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
package: hello
unions:
  - union: Hello
    name: SomeOtherName
    derive: [Clone, String]
    bounds: comparable
    imports: [fmt]
    variants:
      - name: World
      - name: There
        key: int
        field: somewhere
`

func TestParse_Sample(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "hello", f.Package)
	require.Len(t, f.Unions, 1)

	u := f.Unions[0]
	assert.Equal(t, "Hello", u.Union)
	assert.Equal(t, "SomeOtherName", u.Name)
	assert.Equal(t, StringOrList{"Clone", "String"}, u.Derive)
	// Scalar form decodes as a one-element list.
	assert.Equal(t, StringOrList{"comparable"}, u.Bounds)
	require.Len(t, u.Variants, 2)
	assert.Empty(t, u.Variants[0].Key)
	assert.Equal(t, "int", u.Variants[1].Key)
	assert.Equal(t, "somewhere", u.Variants[1].Field)
}

func TestParse_MissingPackage(t *testing.T) {
	_, err := Parse([]byte("unions: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package")
}

func TestSchemas_Conversion(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	schemas := f.Schemas("variants.yaml")
	require.Len(t, schemas, 1)

	u := schemas[0]
	assert.Equal(t, "Hello", u.Name)
	assert.Equal(t, "hello", u.Package)
	assert.True(t, u.EmitUnion)
	assert.Equal(t, []string{"fmt"}, u.ExtraImports)
	assert.Equal(t, "variants.yaml", u.Pos.Filename)

	// YAML fields become raw directives so one merge path serves both front ends.
	d, diags := Resolve(&u)
	require.False(t, diags.HasErrors())
	assert.Equal(t, "SomeOtherName", d.RecordName)
	assert.Equal(t, []string{"Clone", "String"}, d.Derives)
	assert.Equal(t, []string{"comparable"}, d.Bounds)

	require.Len(t, u.Variants, 2)
	assert.Equal(t, 0, u.Variants[0].Arity)
	assert.Equal(t, 1, u.Variants[1].Arity)
	assert.Equal(t, "int", u.Variants[1].KeyType)
	assert.Equal(t, "Key", u.Variants[1].KeyField)
	assert.Equal(t, "somewhere", u.Variants[1].FieldOverride)
}
