package dump

import (
	"time"

	"github.com/moffa90/go-ihex/ihex"
)

// Progress contains information about the dump progress.
// Passed to ProgressCallback while writing.
type Progress struct {
	// Phase describes the current operation phase:
	//   "flattening" - Building the memory image
	//   "writing"    - Writing the image
	//   "complete"   - Operation completed successfully
	Phase string

	// BytesWritten is the number of image bytes written so far
	BytesWritten int

	// TotalBytes is the size of the memory image
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the dump started
	ElapsedTime time.Duration
}

// ProgressCallback is called periodically during dumping to report progress.
// Implementations should return quickly to avoid blocking the dump.
type ProgressCallback func(Progress)

// Logger is the logging interface shared with the ihex package.
type Logger = ihex.Logger
