package template

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/trailhead"
)

var (
	ErrNoFiles          = errors.New("no files provided")
	ErrTemplateNotFound = fmt.Errorf("%w: template not found", trailhead.ErrNotExist)
	ErrValueNotBound    = fmt.Errorf("%w: value not bound", trailhead.ErrNotExist)
)
