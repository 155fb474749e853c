package ihex

import "fmt"

// RecordType is the record type byte of an Intel HEX record.
type RecordType uint8

// Record types defined by the Intel HEX format.
const (
	TypeData                   RecordType = 0x00
	TypeEndOfFile              RecordType = 0x01
	TypeExtendedSegmentAddress RecordType = 0x02
	TypeStartSegmentAddress    RecordType = 0x03
	TypeExtendedLinearAddress  RecordType = 0x04
	TypeStartLinearAddress     RecordType = 0x05
)

func (t RecordType) String() string {
	switch t {
	case TypeData:
		return "Data"
	case TypeEndOfFile:
		return "End Of File"
	case TypeExtendedSegmentAddress:
		return "Extended Segment Address"
	case TypeStartSegmentAddress:
		return "Start Segment Address"
	case TypeExtendedLinearAddress:
		return "Extended Linear Address"
	case TypeStartLinearAddress:
		return "Start Linear Address"
	default:
		return fmt.Sprintf("Unknown (0x%02X)", uint8(t))
	}
}

// RawRecord is one decoded line before any semantic interpretation.
type RawRecord struct {
	// ByteCount is the declared number of data bytes
	ByteCount uint8

	// LoadOffset is the 16-bit address field
	LoadOffset uint16

	// Type is the record type byte, not yet validated
	Type RecordType

	// Data holds exactly ByteCount bytes
	Data []byte

	// Checksum is the checksum byte stored on the line
	Checksum uint8
}

// Record is a validated Intel HEX record. The concrete type is one of DataRecord,
// EndOfFileRecord, ExtendedSegmentAddressRecord, StartSegmentAddressRecord,
// ExtendedLinearAddressRecord or StartLinearAddressRecord.
type Record interface {
	// Type returns the record type byte this record was decoded from.
	Type() RecordType

	sealed()
}

// DataRecord holds data bytes together with the address bases active when it was read.
type DataRecord struct {
	// Offset is the 16-bit load offset from the line
	Offset uint16

	// Data is the record payload (0 to 255 bytes)
	Data []byte

	// Bases is a copy of the extended address state preceding this record
	Bases AddressBases
}

// EndOfFileRecord marks the end of the file.
type EndOfFileRecord struct{}

// ExtendedSegmentAddressRecord sets the segment base for following data records.
type ExtendedSegmentAddressRecord struct {
	// SegmentBase is the 16-bit field value shifted left by 4
	SegmentBase uint32
}

// StartSegmentAddressRecord gives the CS:IP entry point of 16-bit images.
type StartSegmentAddressRecord struct {
	CodeSegment        uint16
	InstructionPointer uint16
}

// ExtendedLinearAddressRecord sets the upper 16 bits of the address for following data records.
type ExtendedLinearAddressRecord struct {
	AddressBase uint16
}

// StartLinearAddressRecord gives the 32-bit entry point.
type StartLinearAddressRecord struct {
	EntryPoint uint32
}

func (DataRecord) Type() RecordType                   { return TypeData }
func (EndOfFileRecord) Type() RecordType              { return TypeEndOfFile }
func (ExtendedSegmentAddressRecord) Type() RecordType { return TypeExtendedSegmentAddress }
func (StartSegmentAddressRecord) Type() RecordType    { return TypeStartSegmentAddress }
func (ExtendedLinearAddressRecord) Type() RecordType  { return TypeExtendedLinearAddress }
func (StartLinearAddressRecord) Type() RecordType     { return TypeStartLinearAddress }

func (DataRecord) sealed()                   {}
func (EndOfFileRecord) sealed()              {}
func (ExtendedSegmentAddressRecord) sealed() {}
func (StartSegmentAddressRecord) sealed()    {}
func (ExtendedLinearAddressRecord) sealed()  {}
func (StartLinearAddressRecord) sealed()     {}

// Address returns the effective address of the first data byte.
//
// The result can exceed 32 bits when a segment base and a linear base are combined near the
// top of the address space, so it is returned as uint64.
func (r DataRecord) Address() uint64 {
	return r.Bases.Base() + uint64(r.Offset)
}

// End returns the address one past the last data byte.
func (r DataRecord) End() uint64 {
	return r.Address() + uint64(len(r.Data))
}

// Address returns the real-mode linear entry address CS*16 + IP.
func (r StartSegmentAddressRecord) Address() uint32 {
	return uint32(r.CodeSegment)<<4 + uint32(r.InstructionPointer)
}

// StartAddress is the entry point of a file, either a StartSegmentAddressRecord or a
// StartLinearAddressRecord.
type StartAddress interface {
	Record
	startAddress()
}

func (StartSegmentAddressRecord) startAddress() {}
func (StartLinearAddressRecord) startAddress()  {}

// AddressBases is the extended address state while reading a file.
// The zero value means no base record has been seen.
type AddressBases struct {
	Segment    ExtendedSegmentAddressRecord
	HasSegment bool

	Linear    ExtendedLinearAddressRecord
	HasLinear bool
}

// Base returns the combined base address (linear << 16) + segment. Absent bases count as zero.
func (b AddressBases) Base() uint64 {
	var base uint64
	if b.HasLinear {
		base += uint64(b.Linear.AddressBase) << 16
	}
	if b.HasSegment {
		base += uint64(b.Segment.SegmentBase)
	}
	return base
}
