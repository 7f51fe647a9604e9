package tour

import (
	"math"

	"github.com/gogpu/paintbook"
)

// All coordinates below are on the 200 unit layout canvas.

// drawPrinciple shows the whole pipeline: the surface is what we draw
// into, the context is the pen, the path says where and fill says how.
func drawPrinciple(ctx *paintbook.Context, _ Canvas) error {
	ctx.SetSourceRGB(0.8, 0.8, 0.8)
	ctx.Rectangle(50, 50, 100, 100)
	return ctx.Fill()
}

// drawPaint paints the source over the whole surface, as if through an
// infinite mask.
func drawPaint(ctx *paintbook.Context, _ Canvas) error {
	ctx.SetSourceRGB(1, 0, 0)
	return ctx.Paint()
}

// drawRandLines joins random points with one stroked polyline. The first
// LineTo has no current point and starts the path.
func drawRandLines(ctx *paintbook.Context, cv Canvas) error {
	ctx.SetSourceRGB(1, 1, 1)
	if err := ctx.Paint(); err != nil {
		return err
	}

	points := 80
	if cv.Size > DefaultSize {
		points = 100
	}
	ctx.SetSourceRGB(0, 0, 0)
	for range points {
		x := cv.Rand.Float64() * DefaultSize
		y := cv.Rand.Float64() * DefaultSize
		ctx.LineTo(x, y)
	}
	return ctx.Stroke()
}

// drawBasics frames the canvas and centers a word using its ink extents.
func drawBasics(ctx *paintbook.Context, _ Canvas) error {
	ctx.SetSourceRGB(0, 0, 0)
	if err := ctx.Paint(); err != nil {
		return err
	}

	ctx.SetLineWidth(8)
	ctx.SetSourceColor(paintbook.RGB8(26, 188, 156))
	ctx.Rectangle(0, 0, 200, 200)
	if err := ctx.Stroke(); err != nil {
		return err
	}

	const text = "cairo"
	ctx.SetSourceColor(paintbook.RGB8(204, 174, 249))
	ctx.SelectFontFace("Georgia", paintbook.FontSlantNormal, paintbook.FontWeightBold)
	ctx.SetFontSize(40)
	te, err := ctx.TextExtents(text)
	if err != nil {
		return err
	}
	ctx.MoveTo(100-te.Width/2-te.XBearing, 100-te.Height/2-te.YBearing)
	return ctx.ShowText(text)
}

// drawMask colors the canvas with a diagonal linear gradient seen through
// a radial mask that fades out halfway between its circles.
func drawMask(ctx *paintbook.Context, _ Canvas) error {
	lin := paintbook.NewLinearGradient(0, 0, 200, 200)
	lin.AddColorStopRGB(0, 0, 0.3, 0.8)
	lin.AddColorStopRGB(1, 0, 0.8, 0.3)

	rad := paintbook.NewRadialGradient(100, 100, 10, 100, 100, 140)
	rad.AddColorStopRGBA(0, 0, 0, 0, 1)
	rad.AddColorStopRGBA(0.5, 0, 0, 0, 0)

	if err := ctx.SetSource(lin); err != nil {
		return err
	}
	return ctx.Mask(rad)
}

// drawSource1 layers translucent rectangles over a thick black cross.
func drawSource1(ctx *paintbook.Context, _ Canvas) error {
	ctx.SetSourceRGB(0, 0, 0)
	ctx.MoveTo(0, 0)
	ctx.LineTo(200, 200)
	ctx.MoveTo(200, 0)
	ctx.LineTo(0, 200)
	ctx.SetLineWidth(25)
	if err := ctx.Stroke(); err != nil {
		return err
	}

	rects := []struct {
		x, y  float64
		color paintbook.RGBA
	}{
		{0, 0, paintbook.RGB8(225, 96, 78).WithAlpha(0.8)},
		{0, 100, paintbook.RGB8(56, 215, 28).WithAlpha(0.4)},
		{100, 0, paintbook.RGB8(46, 147, 213).WithAlpha(0.6)},
	}
	for _, r := range rects {
		ctx.Rectangle(r.x, r.y, 100, 100)
		ctx.SetSourceColor(r.color)
		if err := ctx.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// drawSource2 fills a 9x9 grid of squares with a radial gradient, then
// covers everything with translucent linear stripes.
func drawSource2(ctx *paintbook.Context, _ Canvas) error {
	const w = 200.0

	rad := paintbook.NewRadialGradient(w*0.25, w*0.25, w*0.1, w*0.5, w*0.5, w*0.5)
	rad.AddColorStopRGB(0, 1, 0.8, 0.8)
	rad.AddColorStopRGB(1, 0.9, 0, 0)

	for i := 1; i < 10; i++ {
		for j := 1; j < 10; j++ {
			ctx.Rectangle(w*(float64(i)/10-0.04), w*(float64(j)/10-0.04), w*0.08, w*0.08)
		}
	}
	if err := ctx.SetSource(rad); err != nil {
		return err
	}
	if err := ctx.Fill(); err != nil {
		return err
	}

	lin := paintbook.NewLinearGradient(w*0.25, w*0.35, w*0.75, w*0.65)
	lin.AddColorStopRGBA(0, 1, 1, 1, 0)
	lin.AddColorStopRGBA(0.25, 0, 1, 0, 0.5)
	lin.AddColorStopRGBA(0.5, 1, 1, 1, 0)
	lin.AddColorStopRGBA(0.75, 0, 0, 1, 0.5)
	lin.AddColorStopRGBA(1, 1, 1, 1, 0)

	ctx.Rectangle(0, 0, w, w)
	if err := ctx.SetSource(lin); err != nil {
		return err
	}
	return ctx.Fill()
}

// drawCurves strokes one closed figure made of a line, a relative line,
// an arc and a relative curve.
func drawCurves(ctx *paintbook.Context, _ Canvas) error {
	ctx.MoveTo(50, 50)
	ctx.LineTo(100, 75)
	ctx.RelLineTo(50, -25)
	ctx.Arc(100, 100, 50*math.Sqrt2, -0.25*math.Pi, 0.25*math.Pi)
	ctx.RelCurveTo(-50, -25, -50, 25, -100, 0)
	ctx.ClosePath()

	ctx.SetSourceColor(paintbook.RGB8(6, 117, 114))
	return ctx.Stroke()
}

// drawPattern draws a red line onto the white canvas through a second
// context, then paints the canvas back onto itself as a stretched,
// repeating pattern. Atop keeps the result inside the existing coverage.
func drawPattern(ctx *paintbook.Context, cv Canvas) error {
	ctx.SetSourceRGBA(1, 1, 1, 1)
	if err := ctx.Paint(); err != nil {
		return err
	}

	surface := ctx.Surface()
	pen, err := paintbook.NewContext(surface)
	if err != nil {
		return err
	}
	defer pen.Close()
	pen.Scale(cv.Scale, cv.Scale)
	pen.SetSourceRGB(1, 0, 0)
	pen.SetLineWidth(8)
	pen.MoveTo(100, 0)
	pen.LineTo(100, 200)
	if err := pen.Stroke(); err != nil {
		return err
	}

	// Pattern x is 60*x+10 on the layout grid, so the line repeats every
	// 200/60 units.
	pattern := paintbook.NewSurfacePattern(surface)
	pattern.SetExtend(paintbook.ExtendRepeat)
	pattern.SetMatrix(paintbook.Scale(cv.Scale, cv.Scale).Multiply(paintbook.NewMatrix(60, 0, 0, 1, 10, 0)))

	ctx.SetOperator(paintbook.OperatorAtop)
	if err := ctx.SetSource(pattern); err != nil {
		return err
	}
	return ctx.Paint()
}

// drawScale sets up a 150x150 working frame centered on the canvas, where
// coordinates run from 0 to 1, and fills it.
func drawScale(ctx *paintbook.Context, _ Canvas) error {
	ctx.Scale(150, 150)
	ctx.Translate(1.0/6, 1.0/6)

	ctx.Rectangle(0, 0, 1, 1)
	ctx.SetSourceRGB(1, 1, 0)
	return ctx.Fill()
}
