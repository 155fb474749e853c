package ihex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// DefaultRecordCapacity is the default initial capacity for the records slice
const DefaultRecordCapacity = 256

// maxLineLength bounds a single line: 255 data bytes plus header, checksum and slack.
const maxLineLength = 64 * 1024

// maxAddressable is the largest image that can be indexed with an int on this platform.
var maxAddressable uint64 = math.MaxInt

// FileType is the address width a file needs.
// The values are ordered: Type8Bit < Type16Bit < Type32Bit.
type FileType int

// File types.
const (
	Type8Bit  FileType = 8
	Type16Bit FileType = 16
	Type32Bit FileType = 32
)

func (t FileType) String() string {
	switch t {
	case Type8Bit:
		return "8-bit"
	case Type16Bit:
		return "16-bit"
	case Type32Bit:
		return "32-bit"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// File is a completely parsed Intel HEX file. It is read-only once returned.
type File struct {
	// Records holds every record in file order
	Records []Record

	// Start is the first start address record, or nil if the file has none
	Start StartAddress

	maxImageSize int
}

// Type returns the widest address form used by any record.
// Segment records make a file 16-bit, linear records make it 32-bit.
func (f *File) Type() FileType {
	fileType := Type8Bit
	for _, rec := range f.Records {
		switch rec.(type) {
		case ExtendedSegmentAddressRecord, StartSegmentAddressRecord:
			fileType = max(fileType, Type16Bit)
		case ExtendedLinearAddressRecord, StartLinearAddressRecord:
			fileType = max(fileType, Type32Bit)
		}
	}
	return fileType
}

// DataRecords returns the data records in file order.
func (f *File) DataRecords() []DataRecord {
	var data []DataRecord
	for _, rec := range f.Records {
		if d, ok := rec.(DataRecord); ok {
			data = append(data, d)
		}
	}
	return data
}

// ImageSize returns the length of the flattened image: the highest end address of any data
// record, including empty ones. It does not allocate the image.
func (f *File) ImageSize() uint64 {
	var size uint64
	for _, rec := range f.Records {
		if d, ok := rec.(DataRecord); ok {
			size = max(size, d.End())
		}
	}
	return size
}

// Image flattens all data records into one buffer indexed by effective address.
//
// Records are applied in file order, so where ranges overlap the later record's bytes win.
// Bytes not covered by any record are zero. A new buffer is returned on every call.
// Image fails with *ImageTooLargeError if the result would exceed the configured maximum.
func (f *File) Image() ([]byte, error) {
	size := f.ImageSize()
	if f.maxImageSize > 0 && size > uint64(f.maxImageSize) {
		return nil, &ImageTooLargeError{Size: size, Limit: f.maxImageSize}
	}
	if size > maxAddressable {
		return nil, &ImageTooLargeError{Size: size, Limit: int(maxAddressable)}
	}

	var image []byte
	for _, rec := range f.Records {
		d, ok := rec.(DataRecord)
		if !ok {
			continue
		}
		addr := int(d.Address())
		end := addr + len(d.Data)
		if end > len(image) {
			image = append(image, make([]byte, end-len(image))...)
		}
		copy(image[addr:end], d.Data)
	}
	if image == nil {
		image = []byte{}
	}
	return image, nil
}

// ParseReader parses an Intel HEX file from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// Example:
//
//	data := strings.NewReader(hexContent)
//	f, err := ihex.ParseReader(data)
func ParseReader(r io.Reader, opts ...Option) (*File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	a := newAssembler(opts)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := a.addLine(lineNum, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{Line: lineNum + 1, Err: ErrLineTooLong}
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return a.finish()
}

// ParseLines parses an Intel HEX file already split into lines, the first being line 1.
func ParseLines(lines []string, opts ...Option) (*File, error) {
	a := newAssembler(opts)
	for i, line := range lines {
		if err := a.addLine(i+1, line); err != nil {
			return nil, err
		}
	}
	return a.finish()
}

// assembler folds lines into a File. Empty lines are skipped but still counted. Any line that
// fails to decode or validate aborts the parse with a *LineError.
type assembler struct {
	in   *Interpreter
	file *File
}

func newAssembler(opts []Option) *assembler {
	in := NewInterpreter(opts...)
	return &assembler{
		in: in,
		file: &File{
			Records:      make([]Record, 0, DefaultRecordCapacity),
			maxImageSize: in.config.MaxImageSize,
		},
	}
}

func (a *assembler) addLine(lineNum int, line string) error {
	line = strings.TrimRight(line, "\r")

	// Skip empty lines
	if line == "" {
		return nil
	}

	raw, err := DecodeLine(line)
	if err != nil {
		return &LineError{Line: lineNum, Err: err}
	}

	a.in.line = lineNum
	rec, err := a.in.Interpret(raw)
	if err != nil {
		return &LineError{Line: lineNum, Err: err}
	}

	a.file.Records = append(a.file.Records, rec)
	return nil
}

func (a *assembler) finish() (*File, error) {
	if a.in.config.RequireEOF && !a.in.SeenEOF() {
		return nil, ErrNoEndOfFile
	}

	f := a.file
	f.Start = a.in.Start()

	a.in.config.Logger.Debug("parsed file",
		"records", len(f.Records),
		"type", f.Type().String(),
		"image_size", f.ImageSize(),
	)

	return f, nil
}
