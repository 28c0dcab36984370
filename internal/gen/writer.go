package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files, creating directories as needed.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir != "" {
			err := os.MkdirAll(file.Dir, dirPerm)
			if err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		err := os.WriteFile(file.Path(), file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// joinPath joins dir and name, tolerating an empty dir.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}

	return filepath.Join(dir, name)
}
