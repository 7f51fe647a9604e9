package tour

// DefaultOutputDir is where demos write their PNG files unless configured
// otherwise. The directory is never created by this package.
const DefaultOutputDir = "example_output"

// DefaultSize is the side of the square canvas in pixels. Demo coordinates
// are laid out for this size and scaled to other sizes.
const DefaultSize = 200

// Config controls how demos are rendered and where they are written.
type Config struct {
	OutputDir string
	Size      int

	// Seed drives the random demos when Seeded is true. Otherwise every
	// run uses a fresh random source.
	Seed   uint64
	Seeded bool
}

// Option configures a Config.
//
// Example:
//
//	cfg := tour.NewConfig(tour.WithSize(600), tour.WithSeed(42))
type Option func(*Config)

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		OutputDir: DefaultOutputDir,
		Size:      DefaultSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOutputDir sets the directory PNG files are written to.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

// WithSize sets the canvas side in pixels. Invalid sizes are reported by
// Render when the surface is allocated.
func WithSize(size int) Option {
	return func(c *Config) {
		c.Size = size
	}
}

// WithSeed makes the random demos reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.Seeded = true
	}
}
