package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrDuplicateScript reports two models compiled to the same file name.
var ErrDuplicateScript = errors.New("duplicate model script")

// Write stores the script as dir/<Filename> and returns the path written.
func (g *GeneratedSource) Write(dir string) (string, error) {
	path := filepath.Join(dir, g.Filename)

	if err := os.WriteFile(path, g.Content, filePerm); err != nil {
		return "", fmt.Errorf("writing model %q script: %w", g.Model, err)
	}

	return path, nil
}

// WriteFiles writes every script into dir, creating it first. Scripts are
// checked for file-name collisions before anything is written.
func WriteFiles(files []*GeneratedSource, dir string) error {
	owners := make(map[string]string, len(files))

	for _, f := range files {
		if prev, ok := owners[f.Filename]; ok {
			return fmt.Errorf("%w: models %q and %q both write %s", ErrDuplicateScript, prev, f.Model, f.Filename)
		}

		owners[f.Filename] = f.Model
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating script directory: %w", err)
	}

	for _, f := range files {
		if _, err := f.Write(dir); err != nil {
			return err
		}
	}

	return nil
}
