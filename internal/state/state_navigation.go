package state

import (
	"fmt"
	"strings"
)

// ClampPolicy decides what a relative move does when it would leave the list.
type ClampPolicy int

const (
	// ClampToEdge moves to the first or last record instead of leaving the
	// list, so input at the boundary is never swallowed.
	ClampToEdge ClampPolicy = iota
	// StopAtEdge refuses a move whose target lies outside the list.
	StopAtEdge
)

func (p ClampPolicy) String() string {
	switch p {
	case StopAtEdge:
		return "stop"
	default:
		return "edge"
	}
}

// ParseClampPolicy accepts "edge" or "stop" (case-insensitive). The empty
// string selects ClampToEdge.
func ParseClampPolicy(s string) (ClampPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edge", "clamp":
		return ClampToEdge, nil
	case "stop", "noop":
		return StopAtEdge, nil
	default:
		return ClampToEdge, fmt.Errorf("unknown clamp policy %q (want edge or stop)", s)
	}
}

// Navigator tracks the selected index over a list of count records. The
// index is -1 exactly when count is zero.
type Navigator struct {
	Policy ClampPolicy
	index  int
	count  int
}

// Reset starts over on a rebuilt list. index is clamped into range; an empty
// list always has no selection.
func (n *Navigator) Reset(count, index int) {
	n.count = count
	if count <= 0 {
		n.count = 0
		n.index = -1
		return
	}
	n.index = clampIndex(index, count)
}

// Index returns the selected index, or -1 when there is no selection.
func (n *Navigator) Index() int {
	if n.count == 0 {
		return -1
	}
	return n.index
}

// Count returns the length of the list being navigated.
func (n *Navigator) Count() int {
	return n.count
}

// MoveBy moves the selection by delta under the navigator's policy. It
// reports whether the index changed.
func (n *Navigator) MoveBy(delta int) bool {
	if n.count == 0 || delta == 0 {
		return false
	}
	target := n.index + delta
	if target < 0 || target >= n.count {
		if n.Policy == StopAtEdge {
			return false
		}
		target = clampIndex(target, n.count)
	}
	if target == n.index {
		return false
	}
	n.index = target
	return true
}

// MoveTo jumps to index, clamped into range regardless of policy.
func (n *Navigator) MoveTo(index int) bool {
	if n.count == 0 {
		return false
	}
	target := clampIndex(index, n.count)
	if target == n.index {
		return false
	}
	n.index = target
	return true
}

// Select sets the selection directly. Out of range indices are rejected.
func (n *Navigator) Select(index int) bool {
	if index < 0 || index >= n.count {
		return false
	}
	n.index = index
	return true
}

func clampIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
