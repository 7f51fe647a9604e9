package paintbook

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrAllocation reports that a surface or context could not be created.
	ErrAllocation = errors.New("allocation failed")

	// ErrIO reports that a PNG file or stream could not be written.
	ErrIO = errors.New("i/o failed")

	// ErrDraw reports that a drawing operation was rejected.
	ErrDraw = errors.New("drawing failed")
)

// Causes wrapped by OpError.
var (
	errInvalidSize     = errors.New("invalid surface size")
	errInvalidFormat   = errors.New("invalid pixel format")
	errNilSurface      = errors.New("nil surface")
	errClosed          = errors.New("context is closed")
	errNoCurrentPoint  = errors.New("no current point")
	errNilSource       = errors.New("nil source")
	errSingularMatrix  = errors.New("matrix is not invertible")
	errInvalidOperator = errors.New("invalid operator")
	errRestoreEmpty    = errors.New("restore without matching save")
	errInvalidDash     = errors.New("invalid dash pattern")
	errInvalidArc      = errors.New("non-finite arc argument")
)

// OpError describes a failed operation.
type OpError struct {
	Op   string // operation name, e.g. "fill" or "write_png"
	Kind error  // ErrAllocation, ErrIO or ErrDraw
	Err  error  // underlying cause, may be nil
}

func (e *OpError) Error() string {
	s := "paintbook: " + e.Op + ": " + e.Kind.Error()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns both the kind and the cause so errors.Is matches either.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op string, kind, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}
