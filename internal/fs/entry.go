package fs

import "path/filepath"

// Entry is one child of a listed directory.
type Entry struct {
	Name   string
	IsDir  bool
	Hidden bool
	Size   int64 // meaningful for files only
}

// DisplayName appends the path separator to directory names.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + string(filepath.Separator)
	}
	return e.Name
}

// Filter selects which entry classes a listing includes.
type Filter uint8

const (
	ShowFiles Filter = 1 << iota
	ShowDirs
	ShowHidden
)

// DefaultFilter shows files and directories but not hidden entries.
const DefaultFilter = ShowFiles | ShowDirs

// Has reports whether every bit of f is set.
func (f Filter) Has(bit Filter) bool {
	return f&bit == bit
}

// Toggle flips bit.
func (f Filter) Toggle(bit Filter) Filter {
	return f ^ bit
}

// Allows reports whether e passes the filter.
func (f Filter) Allows(e Entry) bool {
	if e.Hidden && !f.Has(ShowHidden) {
		return false
	}
	if e.IsDir {
		return f.Has(ShowDirs)
	}
	return f.Has(ShowFiles)
}

// Flags renders the filter as the three-column "FDH" status string.
func (f Filter) Flags() string {
	flags := []byte("   ")
	if f.Has(ShowFiles) {
		flags[0] = 'F'
	}
	if f.Has(ShowDirs) {
		flags[1] = 'D'
	}
	if f.Has(ShowHidden) {
		flags[2] = 'H'
	}
	return string(flags)
}
