//go:build windows

package records

import "syscall"

const fileAttributeHidden = 0x02

// isHidden honours both the dot convention and the hidden attribute, so
// checkouts made on other systems behave the same.
func isHidden(fullPath, name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
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
