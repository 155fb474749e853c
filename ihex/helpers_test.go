package ihex

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// MockLogger records messages for assertions
type MockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) {
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *MockLogger) Info(msg string, kv ...interface{}) {
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *MockLogger) Warn(msg string, kv ...interface{}) {
	l.warnMsgs = append(l.warnMsgs, msg)
}

func (l *MockLogger) Error(msg string, kv ...interface{}) {
	l.errorMsgs = append(l.errorMsgs, msg)
}

// rawRecord builds a raw record with a correct checksum.
func rawRecord(typ RecordType, offset uint16, data ...byte) RawRecord {
	if data == nil {
		data = []byte{}
	}
	r := RawRecord{
		ByteCount:  uint8(len(data)),
		LoadOffset: offset,
		Type:       typ,
		Data:       data,
	}
	r.Checksum = r.ComputeChecksum()
	return r
}

// recordLine encodes a record line with a correct checksum.
func recordLine(typ RecordType, offset uint16, data ...byte) string {
	r := rawRecord(typ, offset, data...)
	return fmt.Sprintf(":%02X%04X%02X%s%02X",
		r.ByteCount, r.LoadOffset, uint8(r.Type), strings.ToUpper(hex.EncodeToString(r.Data)), r.Checksum)
}

func hexFile(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
