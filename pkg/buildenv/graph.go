// pkg/buildenv/graph.go
package buildenv

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eflumerf/fnal-art/pkg/recipe"
)

// ErrInvalidGraph indicates a dependency graph the driver cannot use
var ErrInvalidGraph = errors.New("invalid dependency graph")

// Spec is one concretized package as handed over by the orchestrator
type Spec struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version,omitempty"`
	Prefix   string            `yaml:"prefix"`
	BuildDir string            `yaml:"build_dir,omitempty"`
	Types    []string          `yaml:"types,omitempty"` // empty means build and link
	Variants map[string]string `yaml:"variants,omitempty"`
}

// HasType reports whether the spec was pulled in with dependency type t
func (s Spec) HasType(t string) bool {
	return recipe.Dependency{Name: s.Name, Types: s.Types}.HasType(t)
}

// Graph is the package being set up plus its resolved dependencies, in
// the order the orchestrator wants their hooks applied
type Graph struct {
	Package      Spec   `yaml:"package"`
	Dependencies []Spec `yaml:"dependencies"`
}

// LoadGraph reads a YAML graph file
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph: %w", err)
	}
	return ParseGraph(data)
}

// ParseGraph parses and validates a YAML graph
func ParseGraph(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing graph: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks that every spec can be located
func (g *Graph) Validate() error {
	if g.Package.Name == "" {
		return fmt.Errorf("%w: package name is required", ErrInvalidGraph)
	}
	if g.Package.Prefix == "" {
		return fmt.Errorf("%w: package %s has no prefix", ErrInvalidGraph, g.Package.Name)
	}
	seen := make(map[string]bool, len(g.Dependencies))
	for i, d := range g.Dependencies {
		if d.Name == "" {
			return fmt.Errorf("%w: dependency %d has no name", ErrInvalidGraph, i)
		}
		if d.Prefix == "" {
			return fmt.Errorf("%w: dependency %s has no prefix", ErrInvalidGraph, d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: dependency %s listed twice", ErrInvalidGraph, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Dependency returns the named dependency spec, or nil
func (g *Graph) Dependency(name string) *Spec {
	for i := range g.Dependencies {
		if g.Dependencies[i].Name == name {
			return &g.Dependencies[i]
		}
	}
	return nil
}

// DependenciesOfType returns the dependencies pulled in with type t, in
// graph order
func (g *Graph) DependenciesOfType(t string) []Spec {
	var out []Spec
	for _, d := range g.Dependencies {
		if d.HasType(t) {
			out = append(out, d)
		}
	}
	return out
}
