package ihex

import (
	"encoding/hex"
	"fmt"
)

// Constants for Intel HEX line parsing.
const (
	// StartCode is the first character of every record line
	StartCode = ':'

	// RecordHeaderSize is the size of the byte count, load offset and record type fields
	RecordHeaderSize = 4

	// RecordChecksumSize is the size of the checksum field
	RecordChecksumSize = 1

	// MinimumRecordBytes is the smallest decoded record (no data bytes)
	MinimumRecordBytes = RecordHeaderSize + RecordChecksumSize
)

// DecodeLine decodes a single record line without validating its checksum or type.
//
// Record format:
//
//	:[ByteCount(1 byte)][LoadOffset(2 bytes)][RecordType(1 byte)][Data(N bytes)][Checksum(1 byte)]
//
// All values are hex-encoded, LoadOffset is big-endian.
//
// Example: ":0300300002337A1E"
//
//	ByteCount: 0x03
//	LoadOffset: 0x0030
//	RecordType: 0x00
//	Data: [0x02, 0x33, 0x7A]
//	Checksum: 0x1E
func DecodeLine(line string) (RawRecord, error) {
	for i := 0; i < len(line); i++ {
		if line[i] > 0x7F {
			return RawRecord{}, fmt.Errorf("%w at column %d", ErrNonASCII, i+1)
		}
	}

	if len(line) == 0 || line[0] != StartCode {
		return RawRecord{}, ErrMissingStartCode
	}

	data, err := hex.DecodeString(line[1:])
	if err != nil {
		return RawRecord{}, fmt.Errorf("%w: %w", ErrNonHex, err)
	}

	if len(data) < MinimumRecordBytes {
		return RawRecord{}, fmt.Errorf("%w: got %d bytes, minimum is %d",
			ErrRecordTooShort, len(data), MinimumRecordBytes)
	}

	byteCount := data[0]
	loadOffset := uint16(data[1])<<8 | uint16(data[2]) // BIG-ENDIAN
	recordType := RecordType(data[3])

	payload := data[RecordHeaderSize : len(data)-RecordChecksumSize]
	if len(payload) != int(byteCount) {
		return RawRecord{}, fmt.Errorf("%w: got %d bytes, byte count is %d",
			ErrDataLength, len(payload), byteCount)
	}

	rec := RawRecord{
		ByteCount:  byteCount,
		LoadOffset: loadOffset,
		Type:       recordType,
		Data:       make([]byte, len(payload)),
		Checksum:   data[len(data)-1],
	}
	copy(rec.Data, payload)

	return rec, nil
}
