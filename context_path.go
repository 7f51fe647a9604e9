package paintbook

// Path construction. Coordinates are in user space and are transformed to
// device space as they are added, so later transform changes do not move
// segments already in the path.

// NewPath clears the current path and the current point.
func (c *Context) NewPath() {
	c.path.Clear()
}

// NewSubPath clears the current point without adding a segment, so the
// next LineTo or Arc starts a new subpath.
func (c *Context) NewSubPath() {
	c.path.hasCurrent = false
	c.path.closed = false
}

// MoveTo begins a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	p := c.st.ctm.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to (x, y). Without a current point it behaves like
// MoveTo(x, y).
func (c *Context) LineTo(x, y float64) {
	p := c.st.ctm.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// CurveTo adds a cubic Bezier curve with control points (x1, y1) and
// (x2, y2) ending at (x3, y3).
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	m := c.st.ctm
	p1 := m.TransformPoint(Pt(x1, y1))
	p2 := m.TransformPoint(Pt(x2, y2))
	p3 := m.TransformPoint(Pt(x3, y3))
	c.path.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

// relative returns the device position of the current point offset by a
// user space vector. Without a current point the context enters an error
// state and ok is false.
func (c *Context) relative(dx, dy float64) (Point, bool) {
	if !c.path.HasCurrentPoint() {
		c.setErr(errNoCurrentPoint)
		return Point{}, false
	}
	return c.path.CurrentPoint().Add(c.st.ctm.TransformVector(Pt(dx, dy))), true
}

// RelMoveTo begins a new subpath offset from the current point.
func (c *Context) RelMoveTo(dx, dy float64) {
	if p, ok := c.relative(dx, dy); ok {
		c.path.MoveTo(p.X, p.Y)
	}
}

// RelLineTo adds a line offset from the current point.
func (c *Context) RelLineTo(dx, dy float64) {
	if p, ok := c.relative(dx, dy); ok {
		c.path.LineTo(p.X, p.Y)
	}
}

// RelCurveTo adds a cubic Bezier curve with all points offset from the
// current point.
func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	p1, ok := c.relative(dx1, dy1)
	if !ok {
		return
	}
	p2, _ := c.relative(dx2, dy2)
	p3, _ := c.relative(dx3, dy3)
	c.path.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

// Arc adds a circular arc of radius r centered at (xc, yc), from angle1 to
// angle2 in the direction of increasing angles. If there is a current
// point a line joins it to the start of the arc. A sweep of more than 64
// turns is reduced to 64 turns plus the remainder. Non-finite arguments put
// the context in an error state.
func (c *Context) Arc(xc, yc, r, angle1, angle2 float64) {
	if err := c.path.arc(c.st.ctm, xc, yc, r, angle1, angle2, false); err != nil {
		c.setErr(err)
	}
}

// ArcNegative is like Arc but follows decreasing angles.
func (c *Context) ArcNegative(xc, yc, r, angle1, angle2 float64) {
	if err := c.path.arc(c.st.ctm, xc, yc, r, angle1, angle2, true); err != nil {
		c.setErr(err)
	}
}

// Rectangle adds a closed rectangle subpath with corner (x, y) and size
// (w, h). The current point ends at (x, y).
func (c *Context) Rectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.RelLineTo(w, 0)
	c.RelLineTo(0, h)
	c.RelLineTo(-w, 0)
	c.ClosePath()
}

// ClosePath adds a line back to the start of the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// HasCurrentPoint reports whether the path has a current point.
func (c *Context) HasCurrentPoint() bool {
	return c.path.HasCurrentPoint()
}

// CurrentPoint returns the current point in user space, or (0, 0) when
// there is none.
func (c *Context) CurrentPoint() (x, y float64) {
	if !c.path.HasCurrentPoint() {
		return 0, 0
	}
	p := c.path.CurrentPoint()
	return c.DeviceToUser(p.X, p.Y)
}

// CopyPath returns the current path in user space.
func (c *Context) CopyPath() *Path {
	inv, _ := c.st.ctm.Invert()
	return c.path.Transform(inv)
}

// AppendPath adds a user space path to the current path.
func (c *Context) AppendPath(p *Path) {
	if p == nil {
		return
	}
	c.path.Append(p, c.st.ctm)
}
