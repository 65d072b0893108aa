package engine

import (
	"errors"

	"github.com/danieljhkim/toolplan/internal/toolset"
)

var (
	// ErrInvalidTarget indicates a target that is missing, off the capacity
	// grid, or (in direct modes) not a positive integer.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrIncompleteInput indicates that one or more stock values are missing.
	// The accompanying result still carries the resolved requirement.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrUnknownMode indicates a mode that is not in the catalog.
	ErrUnknownMode = toolset.ErrUnknownMode
)
