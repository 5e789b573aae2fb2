package state

import (
	"os"
	"path/filepath"
)

// InitialTabPaths decides where each tab starts. Tab 0 is home, tab i is
// args[i-1] when it names a readable directory and home otherwise, and the
// remaining tabs open at cwd.
func InitialTabPaths(args []string, home, cwd string) [TabCount]string {
	var paths [TabCount]string
	paths[0] = home
	for i := 1; i < TabCount; i++ {
		switch {
		case i-1 >= len(args):
			paths[i] = cwd
		case isReadableDir(args[i-1]):
			paths[i] = absPath(args[i-1])
		default:
			paths[i] = home
		}
	}
	for i := range paths {
		paths[i] = withSeparator(paths[i])
	}
	return paths
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func isReadableDir(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	return err == nil && info.IsDir()
}
