// pkg/recipe/expand.go
package recipe

import (
	"fmt"
	"sort"
	"strings"
)

// Vars are the placeholder values available to recipe templates
type Vars map[string]string

// VariantKey is the placeholder name for a variant value
func VariantKey(name string) string {
	return "variant:" + name
}

// DepKey is the placeholder name for a dependency's install prefix
func DepKey(name string) string {
	return "dep:" + name
}

// NewVars builds the standard placeholder set for one package instance
func NewVars(name, version, prefix, buildDir string, variants map[string]string) Vars {
	v := Vars{
		"name":                name,
		"version":             version,
		"version_underscored": Version{Name: version}.Underscored(),
		"prefix":              prefix,
		"build_dir":           buildDir,
	}
	for k, val := range variants {
		v[VariantKey(k)] = val
	}
	return v
}

// With returns a copy of v with extra placeholders set
func (v Vars) With(kv ...string) Vars {
	out := make(Vars, len(v)+len(kv)/2)
	for k, val := range v {
		out[k] = val
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

// WithDependency returns a copy of v that also knows one dependency's
// prefix and version as ${dep:NAME}, ${dep_version:NAME} and
// ${dep_version_underscored:NAME}
func (v Vars) WithDependency(name, version, prefix string) Vars {
	return v.With(
		DepKey(name), prefix,
		"dep_version:"+name, version,
		"dep_version_underscored:"+name, Version{Name: version}.Underscored(),
	)
}

// Expand replaces ${name} placeholders in template. Only the braced form
// is a placeholder: a bare $ such as in $ORIGIN/../lib is kept as is, and
// $$ writes a single $, so $${prefix} yields the literal text ${prefix}.
// Unknown or unterminated placeholders are an error.
func Expand(template string, vars Vars) (string, error) {
	var (
		b       strings.Builder
		missing []string
	)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}
		switch template[i+1] {
		case '$':
			b.WriteByte('$')
			i++
		case '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrInvalidRecipe, template)
			}
			key := template[i+2 : i+2+end]
			val, ok := vars[key]
			if !ok {
				missing = append(missing, key)
			}
			b.WriteString(val)
			i += end + 2
		default:
			b.WriteByte(c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("%w: unknown placeholder(s) %s in %q",
			ErrInvalidRecipe, strings.Join(missing, ", "), template)
	}
	return b.String(), nil
}

// ExpandCMakeArgs expands the recipe's cmake argument templates
func (r *Recipe) ExpandCMakeArgs(vars Vars) ([]string, error) {
	args := make([]string, 0, len(r.CMakeArgs))
	for _, a := range r.CMakeArgs {
		expanded, err := Expand(a, vars)
		if err != nil {
			return nil, fmt.Errorf("%s cmake args: %w", r.Name, err)
		}
		args = append(args, expanded)
	}
	return args, nil
}
