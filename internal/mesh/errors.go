package mesh

import "errors"

var (
	// ErrOddPointCount is returned when the flat point array is not made of x,y pairs.
	ErrOddPointCount = errors.New("mesh: point array length must be even")
	// ErrInsufficientPoints is returned for fewer than three points.
	ErrInsufficientPoints = errors.New("mesh: at least 3 points are required")
	// ErrNonFinitePoint is returned when a coordinate is NaN or infinite.
	ErrNonFinitePoint = errors.New("mesh: point coordinates must be finite")
	// ErrDegenerateGeometry is returned when no triangulation exists,
	// i.e. all points are collinear or coincident.
	ErrDegenerateGeometry = errors.New("mesh: degenerate geometry")
	// ErrIndexOverflow is returned when indices do not fit a 16-bit buffer.
	ErrIndexOverflow = errors.New("mesh: index does not fit in 16 bits")
)
