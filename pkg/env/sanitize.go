// pkg/env/sanitize.go
package env

import (
	"github.com/charmbracelet/log"
)

// PruneDuplicatePaths rewrites a path-list variable without repeated
// entries, keeping the first occurrence of each. Unset or empty variables
// are left alone.
func PruneDuplicatePaths(vars Variables, name string) {
	value, ok := vars.Lookup(name)
	if !ok || value == "" {
		return
	}
	sep := vars.ListSeparator()
	vars.Set(name, SplitPathList(value, sep).Dedupe().Join(sep))
}

// DeprioritizeSystemPaths moves entries under any of prefixes behind all
// other entries of a path-list variable. Unset or empty variables are left
// alone.
func DeprioritizeSystemPaths(vars Variables, name string, prefixes []string) {
	value, ok := vars.Lookup(name)
	if !ok || value == "" {
		return
	}
	sep := vars.ListSeparator()
	list := SplitPathList(value, sep).Partition(func(p string) bool {
		return IsSystemPath(p, prefixes)
	})
	vars.Set(name, list.Join(sep))
}

// Sanitizer applies both path-list clean-ups with a fixed set of system
// prefixes. The zero value treats no path as a system path.
type Sanitizer struct {
	SystemPrefixes []string
	Logger         *log.Logger // optional
}

// NewSanitizer creates a sanitizer for the given system prefixes
func NewSanitizer(prefixes []string) *Sanitizer {
	return &Sanitizer{
		SystemPrefixes: append([]string(nil), prefixes...),
	}
}

// DeprioritizeSystemPaths is DeprioritizeSystemPaths with s's prefixes
func (s *Sanitizer) DeprioritizeSystemPaths(vars Variables, name string) {
	DeprioritizeSystemPaths(vars, name, s.SystemPrefixes)
}

// Sanitize dedupes and then deprioritizes one variable.
// Deduping first keeps a repeated entry from moving apart from its first
// occurrence.
func (s *Sanitizer) Sanitize(vars Variables, name string) {
	before, ok := vars.Lookup(name)
	if !ok || before == "" {
		return
	}

	PruneDuplicatePaths(vars, name)
	s.DeprioritizeSystemPaths(vars, name)

	if s.Logger != nil {
		if after, _ := vars.Lookup(name); after != before {
			s.Logger.Debug("sanitized path list", "var", name, "before", before, "after", after)
		}
	}
}

// SanitizeEnvironments sanitizes every named variable in every environment
func (s *Sanitizer) SanitizeEnvironments(envs []Variables, names ...string) {
	for _, vars := range envs {
		if vars == nil {
			continue
		}
		for _, name := range names {
			s.Sanitize(vars, name)
		}
	}
}
