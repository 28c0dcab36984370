package gen

import (
	"bytes"
	"fmt"
	"os"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Drift reports a generated file that no longer matches what the generator
// would produce today.
type Drift struct {
	// Path of the on-disk file.
	Path string
	// Missing is true when the file does not exist at all.
	Missing bool
	// Diff is a human-readable rendering of the mismatch.
	Diff string
}

// String summarizes the drift for CLI output.
func (d Drift) String() string {
	if d.Missing {
		return fmt.Sprintf("%s: missing (run gen)", d.Path)
	}

	return fmt.Sprintf("%s: out of date (run gen)\n%s", d.Path, d.Diff)
}

// Check compares freshly generated files against what is on disk and returns
// one Drift per mismatch. Nothing is written.
func Check(files []GeneratedFile) ([]Drift, error) {
	var drifts []Drift

	for _, file := range files {
		path := file.Path()

		existing, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			drifts = append(drifts, Drift{Path: path, Missing: true})

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if bytes.Equal(existing, file.Content) {
			continue
		}

		drifts = append(drifts, Drift{
			Path: path,
			Diff: renderDiff(string(existing), string(file.Content)),
		})
	}

	return drifts, nil
}

// renderDiff produces a character-level pretty diff between the on-disk and
// regenerated contents.
func renderDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs)
}
