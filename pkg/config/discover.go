package config

import (
	"os"
	"path/filepath"
)

// DefaultFileNames are the config file names probed during discovery,
// in priority order.
var DefaultFileNames = []string{
	".sort-imports.yaml",
	".sort-imports.yml",
	".sort-imports.json",
}

// maxParentHops bounds the walk toward the filesystem root.
const maxParentHops = 20

// Discover walks upward from start looking for a config file. It
// returns the path of the first match, or "" when none is found. A
// missing config file is not an error.
func Discover(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for hops := 0; hops < maxParentHops; hops++ {
		for _, name := range DefaultFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}
