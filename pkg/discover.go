package csproj

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtension is the project descriptor extension searched for in directories.
const DefaultExtension = ".csproj"

// DiscoverPaths resolves path into the project files to process.
// A file is returned as is. A directory is searched recursively for files
// ending in ext and the matches are returned sorted. Anything else,
// including a path that does not exist, yields no files.
func DiscoverPaths(path, ext string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Mode().IsRegular() {
		return []string{path}, nil
	}
	if !info.IsDir() {
		return nil, nil
	}

	if ext == "" {
		ext = DefaultExtension
	}
	pattern := "**/*" + ext
	matches, err := doublestar.Glob(os.DirFS(path), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("searching %s for %s files: %w", path, ext, err)
	}
	sort.Strings(matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(path, filepath.FromSlash(m))
	}
	return paths, nil
}
