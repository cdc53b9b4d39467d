package template

import (
	"fmt"
	"reflect"
)

// A Scope exposes the values bound for a single render to the template executing.
//
// Templates read values with Get and check for them with IsSet:
//
//	{{ if .IsSet "name" }}Hello, {{ .Get "name" }}{{ end }}
//
// A Scope is built for each render and is never shared between them.
type Scope struct {
	file   string
	values map[string]any
}

// NewScope constructs a *Scope binding a copy of values for rendering file.
func NewScope(file string, values map[string]any) *Scope {
	cp := make(map[string]any, len(values))
	for k, v := range values {
		cp[k] = v
	}

	return &Scope{file: file, values: cp}
}

// File returns the path of the template the *Scope was built for.
func (s *Scope) File() string { return s.file }

// Get returns the value bound to name, or ErrValueNotBound.
func (s *Scope) Get(name string) (any, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrValueNotBound, name, s.file)
	}

	return v, nil
}

// IsSet asserts whether name is bound to a value other than nil.
// A nil pointer, slice, map, channel, func or interface counts as nil.
func (s *Scope) IsSet(name string) bool {
	v, ok := s.values[name]
	if !ok || v == nil {
		return false
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
