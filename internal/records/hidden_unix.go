//go:build !windows

package records

func isHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}
