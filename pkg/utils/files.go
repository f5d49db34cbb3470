package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsUnitFile checks if a file is a serialized unit file
func IsUnitFile(filename string) bool {
	return strings.HasSuffix(filename, ".json")
}

// FindUnitFiles recursively finds all unit files in a directory
func FindUnitFiles(root string) ([]string, error) {
	var unitFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip node_modules and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || name == ".git" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsUnitFile(filepath.Base(path)) {
			unitFiles = append(unitFiles, path)
		}

		return nil
	})

	return unitFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
