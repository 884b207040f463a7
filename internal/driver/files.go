package driver

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the source file suffixes picked up from directories.
var DefaultExtensions = []string{".c"}

// listSourceFiles возвращает отсортированный список исходников в директории
func listSourceFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// ListSources returns the source files a directory run would visit.
func ListSources(dir string, exts []string) ([]string, error) {
	return listSourceFiles(dir, exts)
}
