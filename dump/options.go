package dump

import "github.com/moffa90/go-ihex/ihex"

// Config holds the dumper configuration.
type Config struct {
	// ProgressCallback is called while writing to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ChunkSize is the number of image bytes written per write call
	ChunkSize int

	// MaxFileType is the widest file type the dumper accepts
	MaxFileType ihex.FileType

	// BytesPerLine is the number of bytes per hexdump line
	BytesPerLine int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ChunkSize:    4096,
		MaxFileType:  ihex.Type32Bit,
		BytesPerLine: 16,
	}
}

// Option is a functional option for configuring the Dumper.
type Option func(*Config)

// WithProgressCallback sets a callback function to track dump progress.
//
// Example:
//
//	d := dump.New(w,
//	    dump.WithProgressCallback(func(p dump.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the dumper operations.
//
// Example:
//
//	d := dump.New(w, dump.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithChunkSize sets the number of image bytes written per write call.
// Values below 1 are ignored.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ChunkSize = size
		}
	}
}

// WithMaxFileType rejects files whose type is wider than t.
//
// Example:
//
//	d := dump.New(w, dump.WithMaxFileType(ihex.Type8Bit))
func WithMaxFileType(t ihex.FileType) Option {
	return func(c *Config) {
		c.MaxFileType = t
	}
}

// WithBytesPerLine sets the number of bytes per hexdump line.
// Values below 1 are ignored.
func WithBytesPerLine(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.BytesPerLine = n
		}
	}
}
