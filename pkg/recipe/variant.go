// pkg/recipe/variant.go
package recipe

import (
	"fmt"
	"sort"
	"strings"
)

// Variant returns the named variant, or nil
func (r *Recipe) Variant(name string) *Variant {
	for i := range r.Variants {
		if r.Variants[i].Name == name {
			return &r.Variants[i]
		}
	}
	return nil
}

// Allows reports whether value is permitted. A variant with no listed
// values accepts anything; multi-valued variants take comma-separated lists.
func (v *Variant) Allows(value string) bool {
	if len(v.Values) == 0 {
		return true
	}
	if !v.Multi {
		return contains(v.Values, value)
	}
	for _, part := range strings.Split(value, ",") {
		if !contains(v.Values, part) {
			return false
		}
	}
	return true
}

// ResolveVariants returns every variant's value with overrides applied
func (r *Recipe) ResolveVariants(overrides map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(r.Variants))
	for _, v := range r.Variants {
		resolved[v.Name] = v.Default
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := overrides[name]
		v := r.Variant(name)
		if v == nil {
			return nil, fmt.Errorf("%w: %s has no variant %q", ErrInvalidVariant, r.Name, name)
		}
		if !v.Allows(value) {
			return nil, fmt.Errorf("%w: %s=%s not in %v", ErrInvalidVariant, name, value, v.Values)
		}
		resolved[name] = value
	}

	return resolved, nil
}

// ParseVariantArgs turns name=value arguments into an override map
func ParseVariantArgs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expected name=value, got %q", ErrInvalidVariant, arg)
		}
		out[name] = value
	}
	return out, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
