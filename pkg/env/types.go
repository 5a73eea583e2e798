// pkg/env/types.go
package env

// Variables is the minimal view of an environment the sanitizer needs
type Variables interface {
	Lookup(name string) (string, bool)
	Set(name, value string)
	ListSeparator() string
}

// Environment is an ordered set of environment variables.
// It is not safe for concurrent use.
type Environment struct {
	vars  map[string]string
	order []string
	sep   string
}

// Format selects how an Environment is written out
type Format string

const (
	FormatSh     Format = "sh"
	FormatBash   Format = "bash"
	FormatCsh    Format = "csh"
	FormatDotenv Format = "dotenv"
)

// Formats lists every supported output format
func Formats() []Format {
	return []Format{FormatSh, FormatBash, FormatCsh, FormatDotenv}
}
