// pkg/env/environment.go
package env

import (
	"os"
	"strings"
)

// NewEnvironment creates an empty environment using the platform separator
func NewEnvironment() *Environment {
	return NewEnvironmentWithSeparator(string(os.PathListSeparator))
}

// NewEnvironmentWithSeparator creates an empty environment whose path lists
// are joined with sep
func NewEnvironmentWithSeparator(sep string) *Environment {
	if sep == "" {
		sep = string(os.PathListSeparator)
	}
	return &Environment{
		vars: make(map[string]string),
		sep:  sep,
	}
}

// FromPairs builds an environment from KEY=VALUE strings such as os.Environ().
// Entries without '=' are set to the empty string; later duplicates win.
func FromPairs(pairs []string) *Environment {
	e := NewEnvironment()
	for _, kv := range pairs {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			continue
		}
		e.Set(name, value)
	}
	return e
}

// ListSeparator returns the separator used for path-list variables
func (e *Environment) ListSeparator() string {
	return e.sep
}

// Lookup returns a variable's value and whether it is set
func (e *Environment) Lookup(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Get returns a variable's value, or "" if unset
func (e *Environment) Get(name string) string {
	return e.vars[name]
}

// Set sets a variable, keeping its original position if it already exists
func (e *Environment) Set(name, value string) {
	if _, ok := e.vars[name]; !ok {
		e.order = append(e.order, name)
	}
	e.vars[name] = value
}

// Unset removes a variable
func (e *Environment) Unset(name string) {
	if _, ok := e.vars[name]; !ok {
		return
	}
	delete(e.vars, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Names returns variable names in insertion order
func (e *Environment) Names() []string {
	return append([]string(nil), e.order...)
}

// Len returns the number of variables
func (e *Environment) Len() int {
	return len(e.order)
}

// Pairs returns KEY=VALUE strings in insertion order
func (e *Environment) Pairs() []string {
	pairs := make([]string, 0, len(e.order))
	for _, name := range e.order {
		pairs = append(pairs, name+"="+e.vars[name])
	}
	return pairs
}

// PathList decodes a variable as a path list
func (e *Environment) PathList(name string) PathList {
	return SplitPathList(e.vars[name], e.sep)
}

// SetPathList encodes list into a variable
func (e *Environment) SetPathList(name string, list PathList) {
	e.Set(name, list.Join(e.sep))
}

// PrependPath puts path at the front of a path-list variable
func (e *Environment) PrependPath(name, path string) {
	list := e.PathList(name)
	e.SetPathList(name, append(PathList{path}, list...))
}

// AppendPath puts path at the end of a path-list variable
func (e *Environment) AppendPath(name, path string) {
	list := e.PathList(name)
	e.SetPathList(name, append(list, path))
}

// RemovePath drops every occurrence of path from a path-list variable.
// The variable is unset once nothing is left.
func (e *Environment) RemovePath(name, path string) {
	if _, ok := e.vars[name]; !ok {
		return
	}
	var kept PathList
	for _, p := range e.PathList(name) {
		if p != path {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		e.Unset(name)
		return
	}
	e.SetPathList(name, kept)
}

// Clone returns an independent copy
func (e *Environment) Clone() *Environment {
	c := NewEnvironmentWithSeparator(e.sep)
	for _, name := range e.order {
		c.Set(name, e.vars[name])
	}
	return c
}
