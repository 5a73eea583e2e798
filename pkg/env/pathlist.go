// pkg/env/pathlist.go
package env

import (
	"path"
	"strings"
)

// PathList is the decoded form of a path-list variable.
// Earlier entries take search precedence.
type PathList []string

// SplitPathList decodes value. An empty value is an empty list; empty
// segments inside a non-empty value are kept as entries.
func SplitPathList(value, sep string) PathList {
	if value == "" {
		return nil
	}
	return PathList(strings.Split(value, sep))
}

// Join encodes the list with sep
func (l PathList) Join(sep string) string {
	return strings.Join(l, sep)
}

// Dedupe returns the list with repeated entries removed, keeping the
// first occurrence of each
func (l PathList) Dedupe() PathList {
	seen := make(map[string]bool, len(l))
	out := make(PathList, 0, len(l))
	for _, p := range l {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Partition returns the entries for which isLast is false followed by the
// entries for which it is true. Order within each group is kept.
func (l PathList) Partition(isLast func(string) bool) PathList {
	front := make(PathList, 0, len(l))
	var back PathList
	for _, p := range l {
		if isLast(p) {
			back = append(back, p)
		} else {
			front = append(front, p)
		}
	}
	return append(front, back...)
}

// IsSystemPath reports whether p equals or lies under one of prefixes.
// The root prefix only matches "/" itself, and empty entries never match.
func IsSystemPath(p string, prefixes []string) bool {
	if p == "" {
		return false
	}
	clean := path.Clean(p)
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		prefix = path.Clean(prefix)
		if clean == prefix {
			return true
		}
		if prefix != "/" && strings.HasPrefix(clean, prefix+"/") {
			return true
		}
	}
	return false
}
