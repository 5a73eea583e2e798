// pkg/recipe/types.go
package recipe

import "errors"

var (
	// ErrInvalidRecipe indicates a recipe that cannot be used as written
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrInvalidVariant indicates an unknown variant or a disallowed value
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrVersionNotFound indicates a version the recipe does not declare
	ErrVersionNotFound = errors.New("version not found")
)

// Dependency types, as understood by the orchestrator's resolver
const (
	TypeBuild = "build"
	TypeLink  = "link"
	TypeRun   = "run"
)

// Modification operations
const (
	OpSet     = "set"
	OpUnset   = "unset"
	OpPrepend = "prepend"
	OpAppend  = "append"
	OpRemove  = "remove"
)

// Recipe describes how one package is built and how it shapes the
// environments of its own build and of its dependents
type Recipe struct {
	Name              string       `toml:"name"`
	Description       string       `toml:"description"`
	Homepage          string       `toml:"homepage"`
	URL               string       `toml:"url"`
	Git               string       `toml:"git"`
	Versions          []Version    `toml:"versions"`
	Variants          []Variant    `toml:"variants"`
	Dependencies      []Dependency `toml:"dependencies"`
	CMakeArgs         []string     `toml:"cmake_args"`
	RootCMakeListsDir string       `toml:"root_cmakelists_dir"`
	Serial            bool         `toml:"serial"` // build with a single job
	Sanitize          []string     `toml:"sanitize"`
	Environment       Hooks        `toml:"environment"`
}

// Version is one fetchable version of a recipe
type Version struct {
	Name      string `toml:"name"`
	Tag       string `toml:"tag"`
	Branch    string `toml:"branch"`
	Git       string `toml:"git"`
	SVN       string `toml:"svn"`
	URL       string `toml:"url"`
	SHA256    string `toml:"sha256"`
	Preferred bool   `toml:"preferred"`
	FullRepo  bool   `toml:"full_repo"`
}

// Variant is a named build option
type Variant struct {
	Name        string   `toml:"name"`
	Default     string   `toml:"default"`
	Values      []string `toml:"values"`
	Multi       bool     `toml:"multi"`
	Sticky      bool     `toml:"sticky"`
	Description string   `toml:"description"`
}

// Dependency is an edge to another package
type Dependency struct {
	Name          string   `toml:"name"`
	Constraint    string   `toml:"constraint"`     // passed to the resolver unchanged
	Types         []string `toml:"types"`          // empty means build and link
	WhenGenerator string   `toml:"when_generator"` // only when the generator ends with this
}

// Hooks holds the environment modifications for each lifecycle point
type Hooks struct {
	Build          []Modification `toml:"build"`
	Run            []Modification `toml:"run"`
	DependentBuild []Modification `toml:"dependent_build"`
	DependentRun   []Modification `toml:"dependent_run"`
}

// Modification is one change to an environment variable.
// When Each names a dependency type, the modification is applied once per
// resolved dependency of that type with ${dep_prefix} and ${dep_name} set.
// Value takes ${name} placeholders only (see Expand); a bare $ is literal
// and $$ escapes one.
type Modification struct {
	Op    string `toml:"op"`
	Var   string `toml:"var"`
	Value string `toml:"value"`
	Each  string `toml:"each"`
}
