package vscode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/creachadair/atomicfile"
)

const filePerm = 0o644

// ReadExisting returns the current content of path, or nil if the file
// does not exist.
func ReadExisting(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

// WriteFile replaces path with data atomically: readers see either the old
// content or the complete new content.
func WriteFile(path string, data []byte) error {
	f, err := atomicfile.New(path, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Cancel()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("committing %s: %w", path, err)
	}

	return nil
}
