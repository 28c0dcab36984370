package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_UpToDate(t *testing.T) {
	dir := t.TempDir()
	content := []byte("package hello\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello_variants.go"), content, 0o644))

	drifts, err := Check([]GeneratedFile{{Dir: dir, Filename: "hello_variants.go", Content: content}})

	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestCheck_Missing(t *testing.T) {
	dir := t.TempDir()

	drifts, err := Check([]GeneratedFile{{Dir: dir, Filename: "hello_variants.go", Content: []byte("package hello\n")}})

	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.True(t, drifts[0].Missing)
	assert.Contains(t, drifts[0].String(), "missing")
}

func TestCheck_OutOfDate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello_variants.go"), []byte("package hello\n\nvar old = 1\n"), 0o644))

	drifts, err := Check([]GeneratedFile{{
		Dir:      dir,
		Filename: "hello_variants.go",
		Content:  []byte("package hello\n\nvar new = 2\n"),
	}})

	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.False(t, drifts[0].Missing)
	assert.NotEmpty(t, drifts[0].Diff)
	assert.Contains(t, drifts[0].String(), "out of date")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "made", "on", "demand")

	err := WriteFiles([]GeneratedFile{{Dir: sub, Filename: "hello_variants.go", Content: []byte("package hello\n")}})

	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(sub, "hello_variants.go"))
	require.NoError(t, err)
	assert.Equal(t, "package hello\n", string(got))
}
