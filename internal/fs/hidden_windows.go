//go:build windows

package fs

import "syscall"

const fileAttributeHidden = 0x02

// IsHidden treats dot-prefixed names and entries carrying the hidden
// attribute as hidden.
func IsHidden(fullPath string, name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	if fullPath == "" {
		return false
	}
	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}
