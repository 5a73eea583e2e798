// pkg/recipe/dependency.go
package recipe

import "strings"

// EffectiveTypes returns the dependency's types, defaulting to build+link
func (d Dependency) EffectiveTypes() []string {
	if len(d.Types) == 0 {
		return []string{TypeBuild, TypeLink}
	}
	return d.Types
}

// HasType reports whether the dependency has type t
func (d Dependency) HasType(t string) bool {
	return contains(d.EffectiveTypes(), t)
}

// BuildOnly reports whether the dependency is needed only to build
func (d Dependency) BuildOnly() bool {
	types := d.EffectiveTypes()
	return len(types) == 1 && types[0] == TypeBuild
}

// AppliesTo reports whether the dependency is active for generator
func (d Dependency) AppliesTo(generator string) bool {
	if d.WhenGenerator == "" {
		return true
	}
	return generator != "" && strings.HasSuffix(generator, d.WhenGenerator)
}

// String renders the dependency as name[constraint] (types)
func (d Dependency) String() string {
	return d.Name + d.Constraint + " (" + strings.Join(d.EffectiveTypes(), ",") + ")"
}

// DependenciesFor returns the dependencies active for generator
func (r *Recipe) DependenciesFor(generator string) []Dependency {
	var deps []Dependency
	for _, d := range r.Dependencies {
		if d.AppliesTo(generator) {
			deps = append(deps, d)
		}
	}
	return deps
}
