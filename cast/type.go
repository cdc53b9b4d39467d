package cast

import (
	"fmt"

	"github.com/xy-planning-network/trailhead"
)

var _ trailhead.Enumerable = Type("")

// A Type is a target representation a raw parameter value can be cast as.
type Type string

const (
	AsInteger Type = "integer"
	AsFloat   Type = "float"
	AsArray   Type = "array"
	AsString  Type = "string"
	AsISO     Type = "ISO-8859-1 encoded string"
	AsUTF8    Type = "UTF-8 encoded string"
	AsJSON    Type = "JSON formatted string"
)

// Types lists every valid Type.
func Types() []Type {
	return []Type{AsInteger, AsFloat, AsArray, AsString, AsISO, AsUTF8, AsJSON}
}

func (t Type) String() string { return string(t) }

func (t Type) Valid() error {
	switch t {
	case AsInteger, AsFloat, AsArray, AsString, AsISO, AsUTF8, AsJSON:
		return nil
	default:
		return fmt.Errorf("%w: unknown cast type %q", trailhead.ErrNotValid, string(t))
	}
}
