package ihex

import (
	"errors"
	"fmt"
)

// Structural errors are returned when a line does not have the shape of a record.
var (
	ErrNonASCII         = errors.New("record contains non-ASCII characters")
	ErrMissingStartCode = errors.New("record is missing start code ':'")
	ErrNonHex           = errors.New("record contains non-hex characters")
	ErrRecordTooShort   = errors.New("record too short")
	ErrDataLength       = errors.New("data length does not match byte count")
	ErrLineTooLong      = errors.New("line too long")
)

// Semantic errors are returned, wrapped in a *RecordError, when a well-formed record is invalid.
var (
	ErrChecksum          = errors.New("checksum mismatch")
	ErrUnknownRecordType = errors.New("unknown record type")
	ErrInvalidDataSize   = errors.New("invalid data size for record type")
)

// ErrNoEndOfFile is returned when WithRequireEOF is set and the input has no end of file record.
var ErrNoEndOfFile = errors.New("no end of file record")

// RecordError describes a record that decoded correctly but failed validation.
type RecordError struct {
	// Err is ErrChecksum, ErrUnknownRecordType or ErrInvalidDataSize
	Err error

	// Type is the record type byte of the offending record
	Type RecordType

	// LoadOffset is the load offset of the offending record
	LoadOffset uint16

	// Detail describes the mismatch, e.g. "expected 0x1E, got 0xFF"
	Detail string
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%v: record type 0x%02X at offset 0x%04X", e.Err, uint8(e.Type), e.LoadOffset)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// LineError reports the line on which parsing stopped.
type LineError struct {
	// Line is 1-based
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ImageTooLargeError indicates that flattening would need more memory than allowed.
type ImageTooLargeError struct {
	Size  uint64
	Limit int
}

func (e *ImageTooLargeError) Error() string {
	return fmt.Sprintf("memory image of %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

// IsStructural returns true if err comes from a line that is not a well-formed record.
func IsStructural(err error) bool {
	return errors.Is(err, ErrNonASCII) ||
		errors.Is(err, ErrMissingStartCode) ||
		errors.Is(err, ErrNonHex) ||
		errors.Is(err, ErrRecordTooShort) ||
		errors.Is(err, ErrDataLength) ||
		errors.Is(err, ErrLineTooLong)
}

// IsSemantic returns true if err comes from a well-formed record that failed validation.
func IsSemantic(err error) bool {
	var recErr *RecordError
	return errors.As(err, &recErr)
}
