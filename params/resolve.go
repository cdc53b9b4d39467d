package params

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	getPrefix = "get"
	hasPrefix = "has"
)

// A Call is a resolved accessor, either a Get or a Has.
type Call interface {
	// Param returns the key the Call addresses, as written in the accessor name.
	Param() string
}

// A Get fetches the raw value for Key.
// When Key is not set, Default is returned if HasDefault.
type Get struct {
	Key        string
	Default    any
	HasDefault bool
}

func (g Get) Param() string { return g.Key }

// A Has reports whether Key is set.
type Has struct {
	Key string
}

func (h Has) Param() string { return h.Key }

// Resolve parses an accessor name, like "getOnYourFace" or "hasB", and its arguments into a Call.
//
// A "get" accessor accepts one optional argument, the default.
// A "has" accessor accepts none.
// Resolve returns ErrUnknownAccessor if name is not "get" or "has"
// followed by an identifier starting with an upper-case letter,
// and ErrArgumentCount for too many arguments.
func Resolve(name string, args ...any) (Call, error) {
	var prefix string
	switch {
	case strings.HasPrefix(name, getPrefix):
		prefix = getPrefix
	case strings.HasPrefix(name, hasPrefix):
		prefix = hasPrefix
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccessor, name)
	}

	tail := strings.TrimPrefix(name, prefix)
	if !validTail(tail) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccessor, name)
	}

	switch prefix {
	case getPrefix:
		if len(args) > 1 {
			return nil, fmt.Errorf("%w: %s accepts at most 1 argument, got %d", ErrArgumentCount, name, len(args))
		}

		g := Get{Key: tail}
		if len(args) == 1 {
			g.Default = args[0]
			g.HasDefault = true
		}

		return g, nil

	default:
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: %s accepts no arguments, got %d", ErrArgumentCount, name, len(args))
		}

		return Has{Key: tail}, nil
	}
}

// validTail asserts s is an identifier starting with an upper-case letter.
func validTail(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}

		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
