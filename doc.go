// Package paintbook is a small immediate-mode 2D vector drawing library with
// cairo-style semantics, and the engine behind the paintbook demo tour.
//
// # Overview
//
// A [Surface] is a rectangular pixel buffer. A [Context] is bound to one
// surface and carries the drawing state: the current transformation matrix,
// the source, line attributes, the compositing operator, the font selection
// and the current path.
//
// Paths are built with MoveTo, LineTo, CurveTo, Arc and Rectangle and then
// consumed by Fill or Stroke. Paint covers the whole surface and Mask uses
// the alpha of another source as coverage.
//
// # Quick Start
//
//	surface, err := paintbook.NewSurface(paintbook.FormatARGB32, 200, 200)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx, err := paintbook.NewContext(surface)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx.SetSourceRGB(0.8, 0.8, 0.8)
//	ctx.Rectangle(50, 50, 100, 100)
//	if err := ctx.Fill(); err != nil {
//		log.Fatal(err)
//	}
//	if err := surface.WritePNGFile("principle.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Device space has its origin at the top-left corner with Y pointing down.
// Scale, Translate and Rotate post-multiply the current transformation, so
// each new call applies to user coordinates before the ones already set:
//
//	ctx.Scale(150, 150)
//	ctx.Translate(1.0/6, 1.0/6) // user (0,0) lands on device (25,25)
//
// Pixels are sampled at their centers.
//
// # Sources
//
// Solid colors, [LinearGradient], [RadialGradient] and [SurfacePattern]
// implement [Source]. A source is locked to the transformation in force when
// it is installed with SetSource. Gradients interpolate premultiplied sRGB
// values linearly between stops.
//
// # Errors
//
// Every failing operation returns an error wrapping one of [ErrAllocation],
// [ErrIO] or [ErrDraw]. Use errors.Is to classify and errors.As with
// [*OpError] for the failing operation.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug
// diagnostics such as font fallbacks and PNG export sizes.
package paintbook
