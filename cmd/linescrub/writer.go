package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
)

// WriteLines joins lines with "\n" and replaces the file content with them
func WriteLines(path string, lines []string, enc encoding.Encoding) error {
	data, err := encode(strings.Join(lines, "\n"), enc)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrWrite, path, err)
	}
	return replaceFile(path, data)
}

// replaceFile writes data to a temp file next to path and renames it over
// path, so readers see either the old or the new content. The temp file is
// removed on every failure.
func replaceFile(path string, data []byte) (err error) {
	// Write through symlinks rather than replacing the link itself
	target := path
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		target = resolved
	}

	perm := fs.FileMode(0o644)
	if info, statErr := os.Stat(target); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".linescrub-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrWrite, tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %w", ErrWrite, tmpPath, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrWrite, tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrWrite, tmpPath, err)
	}
	if err = os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", ErrWrite, target, err)
	}
	return nil
}
