package ihex

import (
	"fmt"
)

// Required data sizes for the address records.
const (
	extendedAddressDataSize = 2
	startAddressDataSize    = 4
)

// Interpreter validates raw records and turns them into typed records.
//
// It keeps the extended address bases and the start address seen so far, so records must be
// passed in file order. An Interpreter is not safe for concurrent use.
type Interpreter struct {
	bases  AddressBases
	start  StartAddress
	eof    bool
	config Config

	// line is the current input line, used only for log context
	line int
}

// NewInterpreter creates an Interpreter with empty address state.
func NewInterpreter(opts ...Option) *Interpreter {
	return &Interpreter{config: newConfig(opts)}
}

// Bases returns the address bases that the next data record will receive.
func (in *Interpreter) Bases() AddressBases {
	return in.bases
}

// Start returns the first start address record seen, or nil.
func (in *Interpreter) Start() StartAddress {
	return in.start
}

// SeenEOF reports whether an end of file record has been interpreted.
func (in *Interpreter) SeenEOF() bool {
	return in.eof
}

// Interpret validates raw and returns the typed record.
//
// Extended address records update the bases applied to later data records. The first start
// address record becomes the file's start address; later ones are returned normally but only
// logged.
func (in *Interpreter) Interpret(raw RawRecord) (Record, error) {
	if expected := raw.ComputeChecksum(); expected != raw.Checksum {
		return nil, &RecordError{
			Err:        ErrChecksum,
			Type:       raw.Type,
			LoadOffset: raw.LoadOffset,
			Detail:     fmt.Sprintf("expected 0x%02X, got 0x%02X", expected, raw.Checksum),
		}
	}

	if in.eof {
		in.config.Logger.Warn("record after end of file", in.logContext(raw)...)
	}

	switch raw.Type {
	case TypeData:
		data := make([]byte, len(raw.Data))
		copy(data, raw.Data)
		return DataRecord{
			Offset: raw.LoadOffset,
			Data:   data,
			Bases:  in.bases,
		}, nil

	case TypeEndOfFile:
		if raw.ByteCount != 0 {
			if in.config.StrictEOF {
				return nil, sizeError(raw, 0)
			}
			in.config.Logger.Warn("end of file record carries data",
				append(in.logContext(raw), "byte_count", raw.ByteCount)...)
		}
		in.eof = true
		return EndOfFileRecord{}, nil

	case TypeExtendedSegmentAddress:
		if len(raw.Data) != extendedAddressDataSize {
			return nil, sizeError(raw, extendedAddressDataSize)
		}
		rec := ExtendedSegmentAddressRecord{SegmentBase: uint32(be16(raw.Data)) << 4}
		in.bases.Segment = rec
		in.bases.HasSegment = true
		return rec, nil

	case TypeStartSegmentAddress:
		if len(raw.Data) != startAddressDataSize {
			return nil, sizeError(raw, startAddressDataSize)
		}
		rec := StartSegmentAddressRecord{
			CodeSegment:        be16(raw.Data[0:2]),
			InstructionPointer: be16(raw.Data[2:4]),
		}
		in.recordStart(rec, raw)
		return rec, nil

	case TypeExtendedLinearAddress:
		if len(raw.Data) != extendedAddressDataSize {
			return nil, sizeError(raw, extendedAddressDataSize)
		}
		rec := ExtendedLinearAddressRecord{AddressBase: be16(raw.Data)}
		in.bases.Linear = rec
		in.bases.HasLinear = true
		return rec, nil

	case TypeStartLinearAddress:
		if len(raw.Data) != startAddressDataSize {
			return nil, sizeError(raw, startAddressDataSize)
		}
		rec := StartLinearAddressRecord{
			EntryPoint: uint32(be16(raw.Data[0:2]))<<16 | uint32(be16(raw.Data[2:4])),
		}
		in.recordStart(rec, raw)
		return rec, nil

	default:
		return nil, &RecordError{
			Err:        ErrUnknownRecordType,
			Type:       raw.Type,
			LoadOffset: raw.LoadOffset,
		}
	}
}

func (in *Interpreter) recordStart(rec StartAddress, raw RawRecord) {
	if in.start != nil {
		in.config.Logger.Warn("duplicate start address ignored",
			append(in.logContext(raw), "kept", in.start.Type().String())...)
		return
	}
	in.start = rec
}

func (in *Interpreter) logContext(raw RawRecord) []interface{} {
	kv := []interface{}{"type", raw.Type.String(), "offset", fmt.Sprintf("0x%04X", raw.LoadOffset)}
	if in.line > 0 {
		kv = append(kv, "line", in.line)
	}
	return kv
}

func sizeError(raw RawRecord, want int) error {
	return &RecordError{
		Err:        ErrInvalidDataSize,
		Type:       raw.Type,
		LoadOffset: raw.LoadOffset,
		Detail:     fmt.Sprintf("got %d bytes, expected %d", len(raw.Data), want),
	}
}

// be16 reads a big-endian uint16 from the first two bytes of b.
func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
