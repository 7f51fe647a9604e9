package paintbook

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/paintbook/internal/raster"
	"github.com/gogpu/paintbook/internal/typeface"
)

// LineCap specifies the shape of open subpath ends.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of corners between segments.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// state is the part of the context saved by Save and restored by Restore.
// The current path is not part of it.
type state struct {
	ctm        Matrix
	source     Source
	sourceCTM  Matrix // CTM in force when source was installed
	operator   Operator
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dash       []float64
	dashOffset float64
	fontFamily string
	fontSlant  FontSlant
	fontWeight FontWeight
	fontSize   float64
	clip       *image.Alpha // nil means unclipped; never mutated once set
}

// Context holds the drawing state for one Surface.
// A Context is not safe for concurrent use.
type Context struct {
	surface *Surface
	fonts   *FontSet
	rast    *raster.Rasterizer

	st    state
	stack []state

	path *Path // device space

	// err is the sticky status: once set, drawing operations fail with it.
	err    error
	closed bool

	faceKey faceKey
	face    *typeface.Face
}

type faceKey struct {
	family string
	slant  FontSlant
	weight FontWeight
}

// Ensure Context implements io.Closer.
var _ io.Closer = (*Context)(nil)

// NewContext binds a new drawing context to s with the default state:
// identity transform, opaque black source, Over operator, line width 2,
// butt caps, miter joins with limit 10, and a 10 unit sans-serif font.
func NewContext(s *Surface, opts ...ContextOption) (*Context, error) {
	if s == nil {
		return nil, newError("bind", ErrAllocation, errNilSurface)
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	fonts := options.fonts
	if fonts == nil {
		fonts = DefaultFontSet()
	}

	return &Context{
		surface: s,
		fonts:   fonts,
		rast:    raster.New(s.Width(), s.Height()),
		st: state{
			ctm:        Identity(),
			source:     NewSolidPattern(RGB(0, 0, 0)),
			sourceCTM:  Identity(),
			operator:   options.operator,
			lineWidth:  2,
			lineCap:    LineCapButt,
			lineJoin:   LineJoinMiter,
			miterLimit: 10,
			fontFamily: options.fontFamily,
			fontSize:   options.fontSize,
		},
		stack: make([]state, 0, 8),
		path:  NewPath(),
	}, nil
}

// Close releases the context. Drawing operations after Close fail with
// ErrDraw. Close is idempotent.
func (c *Context) Close() error {
	c.closed = true
	c.rast = nil
	c.face = nil
	c.stack = nil
	return nil
}

// Surface returns the target surface.
func (c *Context) Surface() *Surface { return c.surface }

// Err returns the sticky error status, or nil.
func (c *Context) Err() error {
	if c.closed {
		return newError("status", ErrDraw, errClosed)
	}
	if c.err != nil {
		return newError("status", ErrDraw, c.err)
	}
	return nil
}

// setErr records the first error of the context.
func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// ready returns the error a drawing operation named op must report, if any.
func (c *Context) ready(op string) error {
	if c.closed {
		return newError(op, ErrDraw, errClosed)
	}
	if c.err != nil {
		return newError(op, ErrDraw, c.err)
	}
	return nil
}

// Save pushes a copy of the graphics state.
func (c *Context) Save() {
	st := c.st
	st.dash = append([]float64(nil), c.st.dash...)
	c.stack = append(c.stack, st)
}

// Restore pops the state pushed by the matching Save. The current path is
// left unchanged.
func (c *Context) Restore() error {
	if c.closed {
		return newError("restore", ErrDraw, errClosed)
	}
	if len(c.stack) == 0 {
		c.setErr(errRestoreEmpty)
		return newError("restore", ErrDraw, errRestoreEmpty)
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// SetSourceRGB sets an opaque solid source. Components are clamped to [0, 1].
func (c *Context) SetSourceRGB(r, g, b float64) {
	c.SetSourceRGBA(r, g, b, 1)
}

// SetSourceRGBA sets a translucent solid source. Components are clamped to
// [0, 1].
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.SetSourceColor(RGBA{R: r, G: g, B: b, A: a})
}

// SetSourceColor sets a solid source.
func (c *Context) SetSourceColor(col RGBA) {
	c.st.source = NewSolidPattern(col)
	c.st.sourceCTM = c.st.ctm
}

// SetSource installs src as the source. The source is locked to the
// current transformation: later transform changes do not move it.
func (c *Context) SetSource(src Source) error {
	if err := c.ready("set_source"); err != nil {
		return err
	}
	if src == nil {
		return newError("set_source", ErrDraw, errNilSource)
	}
	if e, ok := src.(interface{ Err() error }); ok && e.Err() != nil {
		return newError("set_source", ErrDraw, e.Err())
	}
	c.st.source = src
	c.st.sourceCTM = c.st.ctm
	return nil
}

// SetSourceSurface uses s as the source with its origin at user (x, y).
func (c *Context) SetSourceSurface(s *Surface, x, y float64) error {
	p := NewSurfacePattern(s)
	p.SetMatrix(Translate(-x, -y))
	return c.SetSource(p)
}

// Source returns the current source.
func (c *Context) Source() Source { return c.st.source }

// SetOperator sets the compositing operator. An unknown operator puts the
// context in an error state.
func (c *Context) SetOperator(op Operator) {
	if !op.valid() {
		c.setErr(fmt.Errorf("%w: %d", errInvalidOperator, op))
		return
	}
	c.st.operator = op
}

// Operator returns the compositing operator.
func (c *Context) Operator() Operator { return c.st.operator }

// SetLineWidth sets the stroke width in user units. Negative widths are
// treated as zero.
func (c *Context) SetLineWidth(w float64) {
	c.st.lineWidth = max(w, 0)
}

// LineWidth returns the stroke width in user units.
func (c *Context) LineWidth() float64 { return c.st.lineWidth }

// SetLineCap sets the cap style.
func (c *Context) SetLineCap(lc LineCap) { c.st.lineCap = lc }

// LineCap returns the cap style.
func (c *Context) LineCap() LineCap { return c.st.lineCap }

// SetLineJoin sets the join style.
func (c *Context) SetLineJoin(lj LineJoin) { c.st.lineJoin = lj }

// LineJoin returns the join style.
func (c *Context) LineJoin() LineJoin { return c.st.lineJoin }

// SetMiterLimit sets the miter length to line width ratio above which
// miter joins are beveled.
func (c *Context) SetMiterLimit(limit float64) { c.st.miterLimit = limit }

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 { return c.st.miterLimit }

// SetDash sets the dash pattern in user units. An empty pattern draws
// solid lines. Negative lengths or an all-zero pattern put the context in
// an error state.
func (c *Context) SetDash(dashes []float64, offset float64) {
	total := 0.0
	for _, d := range dashes {
		if d < 0 {
			c.setErr(fmt.Errorf("%w: negative length %v", errInvalidDash, d))
			return
		}
		total += d
	}
	if len(dashes) > 0 && total == 0 {
		c.setErr(fmt.Errorf("%w: zero total length", errInvalidDash))
		return
	}
	c.st.dash = append([]float64(nil), dashes...)
	c.st.dashOffset = offset
}

// Dash returns a copy of the dash pattern and its offset.
func (c *Context) Dash() ([]float64, float64) {
	return append([]float64(nil), c.st.dash...), c.st.dashOffset
}

// Translate moves the user space origin by (tx, ty) user units.
func (c *Context) Translate(tx, ty float64) {
	c.Transform(Translate(tx, ty))
}

// Scale scales user space by (sx, sy).
func (c *Context) Scale(sx, sy float64) {
	c.Transform(Scale(sx, sy))
}

// Rotate rotates user space by angle radians.
func (c *Context) Rotate(angle float64) {
	c.Transform(Rotate(angle))
}

// Transform applies m to user space before the current transformation.
// A non-invertible result puts the context in an error state.
func (c *Context) Transform(m Matrix) {
	c.SetMatrix(c.st.ctm.Multiply(m))
}

// SetMatrix replaces the current transformation.
func (c *Context) SetMatrix(m Matrix) {
	if !m.Invertible() {
		c.setErr(errSingularMatrix)
		return
	}
	c.st.ctm = m
}

// IdentityMatrix resets the current transformation.
func (c *Context) IdentityMatrix() {
	c.st.ctm = Identity()
}

// Matrix returns the current transformation.
func (c *Context) Matrix() Matrix { return c.st.ctm }

// UserToDevice maps a user space point to device space.
func (c *Context) UserToDevice(x, y float64) (float64, float64) {
	p := c.st.ctm.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// DeviceToUser maps a device space point to user space.
func (c *Context) DeviceToUser(x, y float64) (float64, float64) {
	inv, _ := c.st.ctm.Invert()
	p := inv.TransformPoint(Pt(x, y))
	return p.X, p.Y
}
