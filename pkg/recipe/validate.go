// pkg/recipe/validate.go
package recipe

import (
	"errors"
	"fmt"
)

var validOps = []string{OpSet, OpUnset, OpPrepend, OpAppend, OpRemove}

var validTypes = []string{TypeBuild, TypeLink, TypeRun}

// Validate checks the recipe for structural mistakes
func (r *Recipe) Validate() error {
	var errs []error

	if r.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}

	seen := make(map[string]bool)
	for _, v := range r.Versions {
		if v.Name == "" {
			errs = append(errs, errors.New("version with empty name"))
			continue
		}
		if seen[v.Name] {
			errs = append(errs, fmt.Errorf("duplicate version %s", v.Name))
		}
		seen[v.Name] = true
	}

	for _, v := range r.Variants {
		if v.Name == "" {
			errs = append(errs, errors.New("variant with empty name"))
			continue
		}
		if v.Default != "" && !v.Allows(v.Default) {
			errs = append(errs, fmt.Errorf("variant %s default %q not in %v", v.Name, v.Default, v.Values))
		}
	}

	for _, d := range r.Dependencies {
		if d.Name == "" {
			errs = append(errs, errors.New("dependency with empty name"))
		}
		for _, t := range d.Types {
			if !contains(validTypes, t) {
				errs = append(errs, fmt.Errorf("dependency %s has unknown type %q", d.Name, t))
			}
		}
	}

	hooks := map[string][]Modification{
		"build":           r.Environment.Build,
		"run":             r.Environment.Run,
		"dependent_build": r.Environment.DependentBuild,
		"dependent_run":   r.Environment.DependentRun,
	}
	for _, hook := range []string{"build", "run", "dependent_build", "dependent_run"} {
		for i, m := range hooks[hook] {
			if err := m.validate(); err != nil {
				errs = append(errs, fmt.Errorf("environment.%s[%d]: %w", hook, i, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidRecipe, r.Name, errors.Join(errs...))
	}
	return nil
}

func (m Modification) validate() error {
	if !contains(validOps, m.Op) {
		return fmt.Errorf("unknown op %q", m.Op)
	}
	if m.Var == "" {
		return errors.New("var is required")
	}
	if m.Op != OpUnset && m.Value == "" {
		return fmt.Errorf("%s %s needs a value", m.Op, m.Var)
	}
	if m.Each != "" && !contains(validTypes, m.Each) {
		return fmt.Errorf("each names unknown dependency type %q", m.Each)
	}
	return nil
}
