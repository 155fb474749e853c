package dump

import (
	"fmt"

	farm "github.com/dgryski/go-farm"

	"github.com/moffa90/go-ihex/ihex"
)

// Summary describes a parsed file and its memory image.
type Summary struct {
	// Type is the file's address width
	Type ihex.FileType

	// Records is the total number of records
	Records int

	// Counts is the number of records per record type
	Counts map[ihex.RecordType]int

	// DataBytes is the total payload of all data records, overlaps included
	DataBytes int

	// Start is the file's start address, or nil
	Start ihex.StartAddress

	// ImageSize is the length of the flattened memory image
	ImageSize int

	// Fingerprint is the farmhash fingerprint of the memory image
	Fingerprint uint64
}

// Summarize flattens f and describes it.
func Summarize(f *ihex.File) (Summary, error) {
	if f == nil {
		return Summary{}, fmt.Errorf("file cannot be nil")
	}

	s := Summary{
		Type:    f.Type(),
		Records: len(f.Records),
		Counts:  make(map[ihex.RecordType]int),
		Start:   f.Start,
	}

	for _, rec := range f.Records {
		s.Counts[rec.Type()]++
		if d, ok := rec.(ihex.DataRecord); ok {
			s.DataBytes += len(d.Data)
		}
	}

	image, err := f.Image()
	if err != nil {
		return Summary{}, fmt.Errorf("flatten image: %w", err)
	}
	s.ImageSize = len(image)
	s.Fingerprint = farm.Fingerprint64(image)

	return s, nil
}

// StartString formats the start address for display, "none" if absent.
func (s Summary) StartString() string {
	switch start := s.Start.(type) {
	case ihex.StartSegmentAddressRecord:
		return fmt.Sprintf("%04X:%04X (0x%05X)", start.CodeSegment, start.InstructionPointer, start.Address())
	case ihex.StartLinearAddressRecord:
		return fmt.Sprintf("0x%08X", start.EntryPoint)
	default:
		return "none"
	}
}
