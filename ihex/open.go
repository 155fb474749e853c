package ihex

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ParseFile parses an Intel HEX file from the given file path.
// Returns the complete file or an error if parsing fails.
//
// The file is memory-mapped read-only for the duration of the parse. Records never alias the
// mapping, so the returned File stays valid after the file is unmapped.
//
// Example:
//
//	f, err := ihex.ParseFile("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Type: %s\n", f.Type())
func ParseFile(path string, opts ...Option) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	// mmap rejects zero-length mappings
	if info.Size() == 0 {
		return ParseReader(bytes.NewReader(nil), opts...)
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map file: %w", err)
	}
	defer func() { _ = mapped.Unmap() }()

	if err := adviseSequential(mapped); err != nil {
		cfg := newConfig(opts)
		cfg.Logger.Debug("madvise failed", "path", path, "err", err)
	}

	return ParseReader(bytes.NewReader(mapped), opts...)
}
