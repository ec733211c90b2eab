// Package errs defines the sentinel errors returned at the configuration boundary of mathviz.
//
// The numerical packages are total functions and never fail; errors only arise when a caller
// supplies an index, a name or a size that cannot describe a valid visualization. Callers
// should match them with errors.Is, since most are wrapped with additional context.
package errs

import "errors"

var (
	// ErrInvalidViewport is returned when a viewport has non-positive dimensions or its
	// padding leaves no drawable area.
	ErrInvalidViewport = errors.New("invalid viewport: drawable area must be positive")

	// ErrInvalidRange is returned when a domain range has a non-finite bound or Min > Max.
	ErrInvalidRange = errors.New("invalid domain range")

	// ErrUnknownFunction is returned when a function index is outside the catalogue.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrUnknownPreset is returned when a preset name is not in the catalogue.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownOption is returned when a probability option identifier is not recognized.
	ErrUnknownOption = errors.New("unknown option")

	// ErrUnknownShape is returned when a dataset shape name is not recognized.
	ErrUnknownShape = errors.New("unknown dataset shape")

	// ErrInvalidPointCount is returned when a generated dataset would have fewer than 2 points.
	ErrInvalidPointCount = errors.New("invalid point count: must be at least 2")

	// ErrInvalidSpeed is returned when an animation speed is not a positive finite number.
	ErrInvalidSpeed = errors.New("invalid animation speed: must be positive")

	// ErrInvalidDeltaX is returned when a secant step is not a positive finite number.
	ErrInvalidDeltaX = errors.New("invalid delta x: must be positive")
)
