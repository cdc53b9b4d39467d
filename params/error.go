package params

import (
	"fmt"

	"github.com/xy-planning-network/trailhead"
)

var (
	ErrAmbiguousParameter = fmt.Errorf("%w: ambiguous parameter", trailhead.ErrNotValid)
	ErrArgumentCount      = fmt.Errorf("%w: wrong number of arguments", trailhead.ErrBadAny)
	ErrMissingParameter   = fmt.Errorf("%w: missing parameter", trailhead.ErrMissingData)
	ErrUnknownAccessor    = fmt.Errorf("%w: unknown accessor", trailhead.ErrNotImplemented)
)
