package ihex

// DefaultMaxImageSize is the default ceiling for Image, 256 MiB.
const DefaultMaxImageSize = 256 << 20

// Config holds the parser configuration.
type Config struct {
	// Logger receives policy notices such as duplicate start addresses (optional)
	Logger Logger

	// StrictEOF rejects end of file records that carry data bytes.
	// When false such records are accepted and logged as a warning.
	StrictEOF bool

	// RequireEOF fails the parse when the input has no end of file record
	RequireEOF bool

	// MaxImageSize is the largest memory image Image will allocate, zero disables the check
	MaxImageSize int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger:       nopLogger{},
		MaxImageSize: DefaultMaxImageSize,
	}
}

func newConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	return cfg
}

// Option is a functional option for configuring parsing.
type Option func(*Config)

// WithLogger sets a logger for parse notices.
//
// Example:
//
//	f, err := ihex.ParseFile("firmware.hex", ihex.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStrictEOF makes an end of file record with a non-zero byte count a parse error.
func WithStrictEOF() Option {
	return func(c *Config) {
		c.StrictEOF = true
	}
}

// WithRequireEOF makes a missing end of file record a parse error.
func WithRequireEOF() Option {
	return func(c *Config) {
		c.RequireEOF = true
	}
}

// WithMaxImageSize sets the largest memory image, in bytes, that Image will build.
//
// Example:
//
//	f, err := ihex.ParseFile("firmware.hex", ihex.WithMaxImageSize(1<<30))
func WithMaxImageSize(size int) Option {
	return func(c *Config) {
		c.MaxImageSize = size
	}
}
