// Package ihex decodes Intel HEX files into typed records and the flat memory image they describe.
//
// # Intel HEX Format
//
// An Intel HEX file is ASCII text with one record per line. Every record starts with a colon
// followed by hex-encoded fields:
//
//	:[ByteCount(2)][LoadOffset(4)][RecordType(2)][Data(2*ByteCount)][Checksum(2)]
//
// Example record:
//
//	:0300300002337A1E
//	  03 = Byte Count (3 data bytes)
//	  0030 = Load Offset (big-endian)
//	  00 = Record Type (data)
//	  02337A = Data
//	  1E = Checksum (two's complement of the sum of all previous bytes)
//
// Record types:
//
//	00 Data
//	01 End Of File
//	02 Extended Segment Address (base = value << 4)
//	03 Start Segment Address (CS:IP)
//	04 Extended Linear Address (base = value << 16)
//	05 Start Linear Address (32-bit entry point)
//
// # Usage
//
// Parse a file from disk:
//
//	f, err := ihex.ParseFile("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Type: %s\n", f.Type())
//	fmt.Printf("Records: %d\n", len(f.Records))
//
//	image, err := f.Image()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse from an io.Reader:
//
//	f, err := ihex.ParseReader(strings.NewReader(hexContent))
//
// # Address Resolution
//
// Extended address records change the base applied to every data record that follows them.
// Each DataRecord carries a copy of the bases in effect when it was read, so its effective
// address never changes after parsing:
//
//	effective = (linear base << 16) + segment base + load offset
//
// Image flattens the data records in file order. Where two records cover the same address the
// later one wins, and gaps read as zero.
//
// # Error Handling
//
// A parse either returns a complete File or fails with a *LineError naming the 1-based line.
// The wrapped error is one of the structural sentinels (ErrNonASCII, ErrMissingStartCode,
// ErrNonHex, ErrRecordTooShort, ErrDataLength) or a *RecordError for records that decode but
// do not validate (ErrChecksum, ErrUnknownRecordType, ErrInvalidDataSize).
//
// A second start address record is not an error. The first one is kept and the duplicate is
// reported through the configured Logger.
package ihex
