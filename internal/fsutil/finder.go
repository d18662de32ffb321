// Package fsutil provides file system and file list utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files
// ending with the specified extension. It returns their full paths in walk
// order, which is lexical and therefore stable across runs.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// FilterByExtension returns the entries of files whose name ends in one of
// the given extensions, preserving the input order. Toolchain project files
// list sources in a significant order, so this must never sort.
func FilterByExtension(files []string, exts ...string) []string {
	var matched []string
	for _, f := range files {
		for _, ext := range exts {
			if strings.HasSuffix(f, ext) {
				matched = append(matched, f)
				break
			}
		}
	}
	return matched
}
