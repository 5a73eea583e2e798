// errors.go
package fnalart

import (
	"errors"
	"fmt"

	"github.com/eflumerf/fnal-art/pkg/buildenv"
	"github.com/eflumerf/fnal-art/pkg/recipe"
	"github.com/eflumerf/fnal-art/pkg/registry"
)

var (
	// ErrRecipeNotFound indicates no registry has a recipe for the package
	ErrRecipeNotFound = registry.ErrRecipeNotFound

	// ErrInvalidRecipe indicates the recipe is malformed
	ErrInvalidRecipe = recipe.ErrInvalidRecipe

	// ErrInvalidVariant indicates an unknown variant or disallowed value
	ErrInvalidVariant = recipe.ErrInvalidVariant

	// ErrDependencyNotResolved indicates the graph lacks a declared dependency
	ErrDependencyNotResolved = buildenv.ErrDependencyNotResolved

	// ErrInvalidGraph indicates the dependency graph is malformed
	ErrInvalidGraph = buildenv.ErrInvalidGraph

	// ErrPlatformNotSupported indicates the platform is not supported
	ErrPlatformNotSupported = errors.New("platform not supported")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
