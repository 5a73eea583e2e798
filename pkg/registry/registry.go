// pkg/registry/registry.go
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/eflumerf/fnal-art/pkg/recipe"
)

// ErrRecipeNotFound indicates no registry knows the package
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeFile is the file name expected in each package directory
const RecipeFile = "recipe.toml"

//go:embed packages
var builtin embed.FS

// Source is anything that can hand out recipes by name
type Source interface {
	Load(name string) (*recipe.Recipe, error)
	List() ([]string, error)
}

// Registry provides lookup into a packages/<name>/recipe.toml tree
type Registry struct {
	fsys fs.FS
}

// New creates a Registry over fsys, whose root holds package directories
func New(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys}
}

// NewDir creates a Registry over a directory on disk
func NewDir(dir string) *Registry {
	return New(os.DirFS(dir))
}

// Builtin returns the recipes shipped with fnalenv
func Builtin() *Registry {
	sub, err := fs.Sub(builtin, "packages")
	if err != nil {
		panic(fmt.Sprintf("registry: embedded packages missing: %v", err))
	}
	return New(sub)
}

// Load reads and parses <name>/recipe.toml.
// This is the primary method for retrieving recipes.
func (r *Registry) Load(name string) (*recipe.Recipe, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("registry: %w: invalid package name %q", ErrRecipeNotFound, name)
	}

	p := path.Join(name, RecipeFile)

	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		// Check if the directory exists, to give a better error message.
		if info, statErr := fs.Stat(r.fsys, name); statErr == nil && info.IsDir() {
			return nil, fmt.Errorf("registry: found package '%s' directory, but missing %s", name, RecipeFile)
		}
		return nil, fmt.Errorf("registry: %w: '%s'", ErrRecipeNotFound, name)
	}

	return Parse(name, data)
}

// Parse decodes and validates recipe.toml content for the named package.
// An empty name field in the file defaults to name.
func Parse(name string, data []byte) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	if _, err := toml.Decode(string(data), &rec); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if rec.Name == "" {
		rec.Name = name
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	return &rec, nil
}

// List returns the names of all package directories holding a recipe
func (r *Registry) List() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("registry: listing packages: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := fs.Stat(r.fsys, path.Join(e.Name(), RecipeFile)); err != nil {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Layered searches several sources in order; the first that knows a
// package wins
type Layered []Source

// Load returns the recipe from the first source that has it
func (l Layered) Load(name string) (*recipe.Recipe, error) {
	for _, src := range l {
		rec, err := src.Load(name)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, ErrRecipeNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("registry: %w: '%s'", ErrRecipeNotFound, name)
}

// List returns the sorted union of every source's packages
func (l Layered) List() ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, src := range l {
		list, err := src.List()
		if err != nil {
			return nil, err
		}
		for _, n := range list {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
