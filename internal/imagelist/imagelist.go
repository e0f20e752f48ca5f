// Package imagelist enumerates image files beneath a dataset root in a
// deterministic order.
package imagelist

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// ErrNotDirectory is returned when the enumeration root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// DefaultExtensions are the file extensions treated as images when none are
// configured.
var DefaultExtensions = []string{".jpg", ".png"}

// Enumerate walks root and returns the paths of files whose extension is in
// exts, relative to root and slash-separated. Each directory contributes its
// matching files in lexical order before its subdirectories, which are
// visited in lexical order. Extension matching is exact (case-sensitive).
//
// A missing root is an error; an empty tree yields an empty slice.
func Enumerate(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("enumerate images: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("enumerate images: %s: %w", root, ErrNotDirectory)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	files := []string{}
	if err := walk(root, "", exts, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walk(root, rel string, exts []string, out *[]string) error {
	dir := root
	if rel != "" {
		dir = filepath.Join(root, filepath.FromSlash(rel))
	}
	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("enumerate images: %w", err)
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if !slices.Contains(exts, filepath.Ext(name)) {
			continue
		}
		*out = append(*out, path.Join(rel, name))
	}

	for _, name := range subdirs {
		if err := walk(root, path.Join(rel, name), exts, out); err != nil {
			return err
		}
	}
	return nil
}
