// pkg/recipe/version.go
package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// Underscored returns the version with dots replaced by underscores,
// the form used in tags and data-bundle names (09.26.00 -> 09_26_00)
func (v Version) Underscored() string {
	return strings.ReplaceAll(v.Name, ".", "_")
}

// Version returns the named version
func (r *Recipe) Version(name string) (*Version, error) {
	for i := range r.Versions {
		if r.Versions[i].Name == name {
			return &r.Versions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s@%s", ErrVersionNotFound, r.Name, name)
}

// DefaultVersion returns the preferred version, else the highest numeric
// version, else the first declared one. It returns nil if none are declared.
func (r *Recipe) DefaultVersion() *Version {
	if len(r.Versions) == 0 {
		return nil
	}

	for i := range r.Versions {
		if r.Versions[i].Preferred {
			return &r.Versions[i]
		}
	}

	var best *Version
	var bestSegs []int
	for i := range r.Versions {
		segs, ok := numericSegments(r.Versions[i].Name)
		if !ok {
			continue
		}
		if best == nil || compareSegments(segs, bestSegs) > 0 {
			best, bestSegs = &r.Versions[i], segs
		}
	}
	if best != nil {
		return best
	}

	return &r.Versions[0]
}

func numericSegments(name string) ([]int, bool) {
	parts := strings.Split(name, ".")
	segs := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, false
		}
		segs = append(segs, n)
	}
	return segs, true
}

func compareSegments(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// URLFor returns the download location for v: the version's own URL if it
// has one, else the recipe URL expanded with the version placeholders
func (r *Recipe) URLFor(v Version) (string, error) {
	if v.URL != "" {
		return v.URL, nil
	}
	if r.URL == "" {
		return "", nil
	}
	return Expand(r.URL, NewVars(r.Name, v.Name, "", "", nil))
}
