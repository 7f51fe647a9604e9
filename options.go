package paintbook

// ContextOption configures a Context during creation.
//
// Example:
//
//	fonts := paintbook.NewFontSet()
//	_ = fonts.RegisterFile("fonts/Inter-Bold.ttf", "Inter", paintbook.FontSlantNormal, paintbook.FontWeightBold)
//	ctx, err := paintbook.NewContext(surface, paintbook.WithFontSet(fonts))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	fonts      *FontSet
	fontFamily string
	fontSize   float64
	operator   Operator
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		fonts:      nil, // DefaultFontSet
		fontFamily: "sans-serif",
		fontSize:   10,
		operator:   OperatorOver,
	}
}

// WithFontSet makes the context resolve font faces from fs instead of the
// shared default set.
func WithFontSet(fs *FontSet) ContextOption {
	return func(o *contextOptions) {
		if fs != nil {
			o.fonts = fs
		}
	}
}

// WithFont sets the initial font family and size. Sizes that are not
// positive are ignored.
func WithFont(family string, size float64) ContextOption {
	return func(o *contextOptions) {
		o.fontFamily = family
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithOperator sets the initial compositing operator.
func WithOperator(op Operator) ContextOption {
	return func(o *contextOptions) {
		if op.valid() {
			o.operator = op
		}
	}
}
