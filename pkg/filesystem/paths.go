package filesystem

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ and environment variables in a path.
// The result is cleaned; an empty path stays empty.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || (len(path) > 1 && path[0] == '~' && path[1] == '/') {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Clean(os.ExpandEnv(path))
		}
		path = home + path[1:]
	}
	return filepath.Clean(os.ExpandEnv(path))
}
