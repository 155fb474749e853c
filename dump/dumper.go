package dump

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/moffa90/go-ihex/ihex"
)

// Dumper writes memory images of parsed Intel HEX files.
//
// Dumper is safe for concurrent use after initialization as long as the underlying writer is.
type Dumper struct {
	w      io.Writer
	config Config
}

// New creates a new Dumper writing to w with the given options.
//
// Example:
//
//	d := dump.New(os.Stdout,
//	    dump.WithProgressCallback(progressFunc),
//	    dump.WithMaxFileType(ihex.Type16Bit),
//	)
func New(w io.Writer, opts ...Option) *Dumper {
	if w == nil {
		panic("writer cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dumper{
		w:      w,
		config: cfg,
	}
}

// Binary writes the raw memory image of f.
//
// The operation can be cancelled via context between chunks.
func (d *Dumper) Binary(ctx context.Context, f *ihex.File) error {
	image, err := d.image(f)
	if err != nil {
		return err
	}

	return d.writeChunks(ctx, image, d.config.ChunkSize, func(offset int, chunk []byte) error {
		_, err := d.w.Write(chunk)
		return err
	})
}

// Hex writes a hexdump of the memory image of f.
//
// Output format:
//
//	Length: 18 (0x12) bytes
//	00000000:  02 33 7a 00  00 00 00 00  00 00 00 00  00 00 00 00   .3z.............
//	00000010:  01 02                                                 ..
//
// The operation can be cancelled via context between chunks.
func (d *Dumper) Hex(ctx context.Context, f *ihex.File) error {
	image, err := d.image(f)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(d.w, "Length: %d (0x%x) bytes\n", len(image), len(image)); err != nil {
		return err
	}

	// keep chunks aligned to whole lines so line offsets are continuous
	perLine := d.config.BytesPerLine
	chunkSize := d.config.ChunkSize
	if rem := chunkSize % perLine; rem != 0 {
		chunkSize += perLine - rem
	}

	var buf []byte
	return d.writeChunks(ctx, image, chunkSize, func(offset int, chunk []byte) error {
		buf = buf[:0]
		for start := 0; start < len(chunk); start += perLine {
			end := min(start+perLine, len(chunk))
			buf = appendHexLine(buf, offset+start, chunk[start:end], perLine)
		}
		_, err := d.w.Write(buf)
		return err
	})
}

func (d *Dumper) image(f *ihex.File) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("file cannot be nil")
	}

	if fileType := f.Type(); fileType > d.config.MaxFileType {
		return nil, &UnsupportedFileTypeError{
			FileType: fileType,
			Max:      d.config.MaxFileType,
		}
	}

	d.reportProgress(Progress{Phase: PhaseFlattening})

	image, err := f.Image()
	if err != nil {
		return nil, fmt.Errorf("flatten image: %w", err)
	}

	d.logDebug("flattened image",
		"type", f.Type().String(),
		"records", len(f.Records),
		"size", len(image),
	)

	return image, nil
}

// writeChunks feeds image to write in chunkSize pieces.
func (d *Dumper) writeChunks(ctx context.Context, image []byte, chunkSize int, write func(offset int, chunk []byte) error) error {
	startTime := time.Now()

	for offset := 0; offset < len(image); offset += chunkSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		end := min(offset+chunkSize, len(image))
		if err := write(offset, image[offset:end]); err != nil {
			d.logError("write failed", "offset", offset, "err", err)
			return fmt.Errorf("write at offset 0x%X: %w", offset, err)
		}

		d.reportProgress(Progress{
			Phase:        PhaseWriting,
			BytesWritten: end,
			TotalBytes:   len(image),
			Percentage:   float64(end) / float64(len(image)) * 100,
			ElapsedTime:  time.Since(startTime),
		})
	}

	d.reportProgress(Progress{
		Phase:        PhaseComplete,
		BytesWritten: len(image),
		TotalBytes:   len(image),
		Percentage:   100,
		ElapsedTime:  time.Since(startTime),
	})

	d.logInfo("dump complete", "bytes", len(image), "elapsed", time.Since(startTime))

	return nil
}

// appendHexLine appends one hexdump line: offset, bytes in groups of four, then the
// printable ASCII column.
func appendHexLine(buf []byte, offset int, line []byte, perLine int) []byte {
	const digits = "0123456789abcdef"

	buf = fmt.Appendf(buf, "%08x: ", offset)
	for i := 0; i < perLine; i++ {
		if i%4 == 0 {
			buf = append(buf, ' ')
		}
		if i < len(line) {
			buf = append(buf, digits[line[i]>>4], digits[line[i]&0x0F], ' ')
		} else {
			buf = append(buf, ' ', ' ', ' ')
		}
	}

	buf = append(buf, ' ', ' ')
	for _, b := range line {
		if b >= 0x20 && b < 0x7F {
			buf = append(buf, b)
		} else {
			buf = append(buf, '.')
		}
	}
	return append(buf, '\n')
}

// reportProgress calls the progress callback if configured.
func (d *Dumper) reportProgress(p Progress) {
	if d.config.ProgressCallback != nil {
		d.config.ProgressCallback(p)
	}
}

// logDebug logs a debug message if logger is configured.
func (d *Dumper) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if logger is configured.
func (d *Dumper) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if logger is configured.
func (d *Dumper) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
