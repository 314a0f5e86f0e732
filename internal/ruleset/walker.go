package ruleset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListDocuments recursively enumerates the rule documents under root,
// matching the document extension case-insensitively. The result is
// sorted lexicographically so downstream folds are deterministic
// regardless of filesystem enumeration order. A missing or unreadable
// root is an error the caller treats as fatal.
func ListDocuments(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("rules root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rules root %s: not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk rules root %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
