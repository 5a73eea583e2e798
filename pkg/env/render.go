// pkg/env/render.go
package env

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrUnknownFormat is returned by Render for formats it cannot write
	ErrUnknownFormat = errors.New("unknown environment format")

	// ErrUnrenderable is returned for a variable the format cannot express
	ErrUnrenderable = errors.New("cannot render variable")
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render writes e to w in the given format.
// Shell formats follow e's insertion order; dotenv output is sorted by name.
func Render(w io.Writer, e *Environment, format Format) error {
	var (
		out string
		err error
	)

	for _, name := range e.order {
		if !syntax.ValidName(name) {
			return fmt.Errorf("%w: invalid name %q", ErrUnrenderable, name)
		}
	}

	switch format {
	case FormatSh:
		out, err = renderExports(e, syntax.LangPOSIX)
	case FormatBash:
		out, err = renderExports(e, syntax.LangBash)
	case FormatCsh:
		out, err = renderCsh(e)
	case FormatDotenv:
		out, err = godotenv.Marshal(e.vars)
		if err == nil && out != "" {
			out += "\n"
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func renderExports(e *Environment, lang syntax.LangVariant) (string, error) {
	var b strings.Builder
	for _, name := range e.order {
		quoted, err := syntax.Quote(e.vars[name], lang)
		if err != nil {
			return "", fmt.Errorf("quoting %s: %w", name, err)
		}
		fmt.Fprintf(&b, "export %s=%s\n", name, quoted)
	}
	return b.String(), nil
}

// cshEscaper closes the quote around ' and escapes ! even inside quotes,
// where csh would otherwise run history substitution
var cshEscaper = strings.NewReplacer("'", `'\''`, "!", `\!`)

func renderCsh(e *Environment) (string, error) {
	var b strings.Builder
	for _, name := range e.order {
		value := e.vars[name]
		if strings.ContainsAny(value, "\n\r") {
			return "", fmt.Errorf("%w: %s contains a newline", ErrUnrenderable, name)
		}
		fmt.Fprintf(&b, "setenv %s '%s';\n", name, cshEscaper.Replace(value))
	}
	return b.String(), nil
}

// ReadDotenv parses dotenv-formatted input into an environment.
// godotenv does not preserve file order, so names are added sorted.
func ReadDotenv(r io.Reader) (*Environment, error) {
	vars, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing dotenv: %w", err)
	}

	e := NewEnvironment()
	for _, name := range sortedKeys(vars) {
		e.Set(name, vars[name])
	}
	return e, nil
}
