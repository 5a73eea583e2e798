// pkg/buildenv/driver.go
package buildenv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/eflumerf/fnal-art/pkg/env"
	"github.com/eflumerf/fnal-art/pkg/platform"
	"github.com/eflumerf/fnal-art/pkg/recipe"
	"github.com/eflumerf/fnal-art/pkg/registry"
)

// ErrDependencyNotResolved indicates a declared dependency the graph does
// not provide
var ErrDependencyNotResolved = errors.New("dependency not resolved")

// RecipeSource hands out recipes by name
type RecipeSource interface {
	Load(name string) (*recipe.Recipe, error)
}

// Driver applies recipe environment hooks for one package and its
// dependencies
type Driver struct {
	Recipes   RecipeSource
	Generator string         // resolved CMake generator, may be empty
	Sanitizer *env.Sanitizer // nil uses the platform default prefixes
	Logger    *log.Logger    // optional
}

// Result holds the two environments produced for a package
type Result struct {
	Build *env.Environment // applied while the package itself builds
	Run   *env.Environment // persisted for downstream consumers
}

// Phase selects one of the Result environments
type Phase string

const (
	PhaseBuild Phase = "build"
	PhaseRun   Phase = "run"
)

// Environment returns the environment for phase
func (r *Result) Environment(phase Phase) (*env.Environment, error) {
	switch phase {
	case PhaseBuild:
		return r.Build, nil
	case PhaseRun:
		return r.Run, nil
	}
	return nil, fmt.Errorf("unknown phase %q", phase)
}

// Setup builds the build and run environments for g.Package.
// Dependencies contribute their dependent hooks first, in graph order;
// the package's own hooks follow. After every recipe's hooks the touched
// environments are sanitized with that recipe's variable list.
func (d *Driver) Setup(ctx context.Context, g *Graph) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	rec, err := d.Recipes.Load(g.Package.Name)
	if err != nil {
		return nil, fmt.Errorf("loading recipe: %w", err)
	}
	if err := d.checkResolved(rec, g); err != nil {
		return nil, err
	}

	res := &Result{
		Build: env.NewEnvironment(),
		Run:   env.NewEnvironment(),
	}

	for _, dep := range g.Dependencies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		depRec, err := d.Recipes.Load(dep.Name)
		if errors.Is(err, registry.ErrRecipeNotFound) {
			d.debug("no recipe, skipping dependent hooks", "dep", dep.Name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading recipe for %s: %w", dep.Name, err)
		}

		vars, err := d.vars(depRec, dep, nil)
		if err != nil {
			return nil, err
		}
		if err := apply(res.Build, depRec.Environment.DependentBuild, vars, nil); err != nil {
			return nil, fmt.Errorf("%s dependent build hook: %w", dep.Name, err)
		}
		if err := apply(res.Run, depRec.Environment.DependentRun, vars, nil); err != nil {
			return nil, fmt.Errorf("%s dependent run hook: %w", dep.Name, err)
		}
		d.sanitize(depRec, res)
		d.debug("applied dependent hooks", "dep", dep.Name, "for", g.Package.Name)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars, err := d.vars(rec, g.Package, g.Dependencies)
	if err != nil {
		return nil, err
	}
	if err := apply(res.Build, rec.Environment.Build, vars, g); err != nil {
		return nil, fmt.Errorf("%s build hook: %w", rec.Name, err)
	}
	if err := apply(res.Run, rec.Environment.Run, vars, g); err != nil {
		return nil, fmt.Errorf("%s run hook: %w", rec.Name, err)
	}
	d.sanitize(rec, res)
	d.debug("applied package hooks", "package", rec.Name,
		"build_vars", res.Build.Len(), "run_vars", res.Run.Len())

	return res, nil
}

// checkResolved reports declared dependencies missing from the graph.
// Build-only tools may come from the host, so they are not required.
func (d *Driver) checkResolved(rec *recipe.Recipe, g *Graph) error {
	var missing []string
	for _, dep := range rec.DependenciesFor(d.Generator) {
		if dep.BuildOnly() {
			continue
		}
		if g.Dependency(dep.Name) == nil {
			missing = append(missing, dep.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s needs %s", ErrDependencyNotResolved, rec.Name, strings.Join(missing, ", "))
	}
	return nil
}

// vars builds the placeholder set for one spec. deps are exposed as
// ${dep:NAME} placeholders.
func (d *Driver) vars(rec *recipe.Recipe, spec Spec, deps []Spec) (recipe.Vars, error) {
	variants, err := rec.ResolveVariants(spec.Variants)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Name, err)
	}

	version := spec.Version
	if version == "" {
		if v := rec.DefaultVersion(); v != nil {
			version = v.Name
		}
	}

	vars := recipe.NewVars(rec.Name, version, spec.Prefix, spec.BuildDir, variants)
	if spec.BuildDir == "" {
		delete(vars, "build_dir")
	}
	for _, dep := range deps {
		vars = vars.WithDependency(dep.Name, dep.Version, dep.Prefix)
	}
	return vars, nil
}

func (d *Driver) sanitize(rec *recipe.Recipe, res *Result) {
	if len(rec.Sanitize) == 0 {
		return
	}
	s := d.Sanitizer
	if s == nil {
		s = env.NewSanitizer(platform.DefaultSystemPrefixes)
		s.Logger = d.Logger
	}
	s.SanitizeEnvironments([]env.Variables{res.Build, res.Run}, rec.Sanitize...)
}

func (d *Driver) debug(msg string, keyvals ...interface{}) {
	if d.Logger != nil {
		d.Logger.Debug(msg, keyvals...)
	}
}

// apply runs mods against e. Modifications with Each repeat once per
// dependency of g carrying that type; with a nil g they apply nowhere.
func apply(e *env.Environment, mods []recipe.Modification, vars recipe.Vars, g *Graph) error {
	for _, m := range mods {
		if m.Each == "" {
			if err := applyOne(e, m, vars); err != nil {
				return err
			}
			continue
		}
		if g == nil {
			continue
		}
		for _, dep := range g.DependenciesOfType(m.Each) {
			v := vars.With("dep_prefix", dep.Prefix, "dep_name", dep.Name)
			if err := applyOne(e, m, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyOne(e *env.Environment, m recipe.Modification, vars recipe.Vars) error {
	if m.Op == recipe.OpUnset {
		e.Unset(m.Var)
		return nil
	}

	value, err := recipe.Expand(m.Value, vars)
	if err != nil {
		return fmt.Errorf("%s %s: %w", m.Op, m.Var, err)
	}

	switch m.Op {
	case recipe.OpSet:
		e.Set(m.Var, value)
	case recipe.OpPrepend:
		e.PrependPath(m.Var, value)
	case recipe.OpAppend:
		e.AppendPath(m.Var, value)
	case recipe.OpRemove:
		e.RemovePath(m.Var, value)
	default:
		return fmt.Errorf("%w: unknown op %q", recipe.ErrInvalidRecipe, m.Op)
	}
	return nil
}
