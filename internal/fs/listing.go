package fs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrDirectoryUnreadable is matched by every listing failure.
var ErrDirectoryUnreadable = errors.New("directory unreadable")

// DirectoryUnreadableError reports a directory that could not be opened or read.
type DirectoryUnreadableError struct {
	Path string
	Err  error
}

func (e *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryUnreadableError) Unwrap() error {
	return e.Err
}

func (e *DirectoryUnreadableError) Is(target error) bool {
	return target == ErrDirectoryUnreadable
}

// Lister reads directories and orders their entries by locale collation.
// A Lister is not safe for concurrent use.
type Lister struct {
	collator *collate.Collator // nil means byte order
	buf      collate.Buffer
}

// NewLister builds a lister collating for a POSIX locale name such as
// "pl_PL.UTF-8". "", "C" and "POSIX" select plain byte order.
func NewLister(locale string) *Lister {
	tag, ok := parseLocale(locale)
	if !ok {
		return &Lister{}
	}
	return &Lister{collator: collate.New(tag)}
}

// NewListerFromEnv picks the collation locale the way the C library does
// for LC_COLLATE.
func NewListerFromEnv(getenv func(string) string) *Lister {
	return NewLister(LocaleFromEnv(getenv))
}

// LocaleFromEnv returns the first non-empty of LC_ALL, LC_COLLATE and LANG.
func LocaleFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func parseLocale(locale string) (language.Tag, bool) {
	name := locale
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, true
	}
	return tag, true
}

// List returns the visible children of path under filter, directories
// first and each group in collation order.
func (l *Lister) List(path string, filter Filter) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, &DirectoryUnreadableError{Path: path, Err: err}
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if name == "." || name == ".." {
			continue
		}
		fullPath := filepath.Join(path, name)

		info, err := d.Info()
		if err != nil {
			continue
		}
		// Classification follows the link target, like stat(2).
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := os.Stat(fullPath); err == nil {
				info = target
			}
		}

		entry := Entry{
			Name:   name,
			IsDir:  info.IsDir(),
			Hidden: IsHidden(fullPath, name),
		}
		if !entry.IsDir {
			entry.Size = info.Size()
		}
		if !filter.Allows(entry) {
			continue
		}
		entries = append(entries, entry)
	}

	l.Sort(entries)
	return entries, nil
}

// Sort orders entries in place: directories before files, then by
// collation key, then by bytes so distinct names never compare equal.
func (l *Lister) Sort(entries []Entry) {
	keys := make([][]byte, len(entries))
	if l.collator != nil {
		l.buf.Reset()
		for i := range entries {
			keys[i] = l.collator.KeyFromString(&l.buf, entries[i].Name)
		}
	}
	sort.Sort(&byCollation{entries: entries, keys: keys})
}

type byCollation struct {
	entries []Entry
	keys    [][]byte
}

func (s *byCollation) Len() int { return len(s.entries) }

func (s *byCollation) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

func (s *byCollation) Less(i, j int) bool {
	a, b := s.entries[i], s.entries[j]
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	if c := bytes.Compare(s.keys[i], s.keys[j]); c != 0 {
		return c < 0
	}
	return a.Name < b.Name
}
