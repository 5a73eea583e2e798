// fnalart.go
package fnalart

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/eflumerf/fnal-art/pkg/buildenv"
	"github.com/eflumerf/fnal-art/pkg/core"
	"github.com/eflumerf/fnal-art/pkg/env"
	"github.com/eflumerf/fnal-art/pkg/platform"
	"github.com/eflumerf/fnal-art/pkg/recipe"
	"github.com/eflumerf/fnal-art/pkg/registry"
)

// Re-export types for convenience
type (
	Config      = core.Config
	Environment = env.Environment
	Graph       = buildenv.Graph
	Spec        = buildenv.Spec
	Result      = buildenv.Result
	Recipe      = recipe.Recipe
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options tune a Manager beyond what Config carries
type Options struct {
	// Generator is the CMake generator, already resolved by the caller.
	// Use core.ResolveGenerator to combine flags, config and environment.
	Generator string

	// Logger receives debug output; nil disables logging
	Logger *log.Logger
}

// Manager ties recipes, the sanitizer and the lifecycle driver together
type Manager struct {
	config    *Config
	recipes   registry.Layered
	sanitizer *env.Sanitizer
	driver    *buildenv.Driver
}

// NewManager creates a Manager. Recipes from config.RecipePath shadow the
// builtin ones.
func NewManager(config *Config, opts Options) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	prefixes := config.SystemPrefixes
	if len(prefixes) == 0 {
		plat, err := platform.Detect()
		if err != nil {
			return nil, &Error{Op: "detect platform", Err: fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)}
		}
		prefixes = plat.SystemPrefixes
	}

	var recipes registry.Layered
	if config.RecipePath != "" {
		if _, err := os.Stat(config.RecipePath); err != nil {
			return nil, &Error{Op: "open recipe path", Err: err}
		}
		recipes = append(recipes, registry.NewDir(config.RecipePath))
	}
	recipes = append(recipes, registry.Builtin())

	sanitizer := env.NewSanitizer(prefixes)
	sanitizer.Logger = opts.Logger

	return &Manager{
		config:    config,
		recipes:   recipes,
		sanitizer: sanitizer,
		driver: &buildenv.Driver{
			Recipes:   recipes,
			Generator: opts.Generator,
			Sanitizer: sanitizer,
			Logger:    opts.Logger,
		},
	}, nil
}

// Setup produces the build and run environments for g.Package
func (m *Manager) Setup(ctx context.Context, g *Graph) (*Result, error) {
	if g == nil {
		return nil, &Error{Op: "setup", Err: fmt.Errorf("graph cannot be nil")}
	}
	res, err := m.driver.Setup(ctx, g)
	if err != nil {
		return nil, &Error{Op: "setup", Package: g.Package.Name, Err: err}
	}
	return res, nil
}

// Recipe loads one recipe
func (m *Manager) Recipe(name string) (*Recipe, error) {
	if name == "" {
		return nil, &Error{Op: "load recipe", Err: fmt.Errorf("package name is required")}
	}
	rec, err := m.recipes.Load(name)
	if err != nil {
		return nil, &Error{Op: "load recipe", Package: name, Err: err}
	}
	return rec, nil
}

// Recipes lists every known recipe name
func (m *Manager) Recipes() ([]string, error) {
	names, err := m.recipes.List()
	if err != nil {
		return nil, &Error{Op: "list recipes", Err: err}
	}
	return names, nil
}

// CMakeArgs expands a recipe's cmake arguments. version may be empty for
// the default version; g may be nil when no ${dep:...} placeholders occur.
func (m *Manager) CMakeArgs(name, version string, overrides map[string]string, g *Graph) ([]string, error) {
	rec, err := m.Recipe(name)
	if err != nil {
		return nil, err
	}

	if version == "" {
		if v := rec.DefaultVersion(); v != nil {
			version = v.Name
		}
	} else if _, err := rec.Version(version); err != nil {
		return nil, &Error{Op: "cmake args", Package: name, Err: err}
	}

	variants, err := rec.ResolveVariants(overrides)
	if err != nil {
		return nil, &Error{Op: "cmake args", Package: name, Err: err}
	}

	spec := Spec{Name: name}
	if g != nil && g.Package.Name == name {
		spec = g.Package
	}
	vars := recipe.NewVars(rec.Name, version, spec.Prefix, spec.BuildDir, variants)
	if g != nil {
		for _, d := range g.Dependencies {
			vars = vars.WithDependency(d.Name, d.Version, d.Prefix)
		}
	}

	args, err := rec.ExpandCMakeArgs(vars)
	if err != nil {
		return nil, &Error{Op: "cmake args", Package: name, Err: err}
	}
	return args, nil
}

// Sanitize runs the configured sanitizer over envs. With no names, the
// configured sanitize_vars are used.
func (m *Manager) Sanitize(envs []*Environment, names ...string) {
	if len(names) == 0 {
		names = m.config.SanitizeVars
	}
	vars := make([]env.Variables, 0, len(envs))
	for _, e := range envs {
		if e != nil {
			vars = append(vars, e)
		}
	}
	m.sanitizer.SanitizeEnvironments(vars, names...)
}

// SystemPrefixes returns the prefixes the sanitizer treats as system paths
func (m *Manager) SystemPrefixes() []string {
	return append([]string(nil), m.sanitizer.SystemPrefixes...)
}

// Config returns the manager's configuration
func (m *Manager) Config() *Config {
	return m.config
}
