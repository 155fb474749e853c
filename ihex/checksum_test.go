package ihex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0x00,
		},
		{
			name:     "single byte",
			data:     []byte{0x01},
			expected: 0xFF,
		},
		{
			name:     "multiple bytes",
			data:     []byte{0x01, 0x02, 0x03, 0x04},
			expected: 0xF6,
		},
		{
			name:     "all ones",
			data:     []byte{0xFF, 0xFF, 0xFF, 0xFF},
			expected: 0x04, // overflow and 2's complement
		},
		{
			name:     "record fields",
			data:     []byte{0x03, 0x00, 0x30, 0x00, 0x02, 0x33, 0x7A},
			expected: 0x1E,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculateChecksum(tt.data)
			if result != tt.expected {
				t.Errorf("calculateChecksum() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}

func TestRawRecordChecksum(t *testing.T) {
	raw, err := DecodeLine(":0300300002337A1E")
	require.NoError(t, err)

	assert.Equal(t, byte(0x1E), raw.ComputeChecksum())
	assert.Equal(t, raw.ComputeChecksum(), raw.ComputeChecksum(), "recomputation must be stable")
	assert.True(t, raw.ChecksumValid())

	raw.Checksum++
	assert.False(t, raw.ChecksumValid())

	raw.Checksum--
	raw.Data[1] ^= 0x01
	assert.False(t, raw.ChecksumValid())
}

func TestChecksumCoversEveryField(t *testing.T) {
	base := rawRecord(TypeData, 0x1234, 0x10, 0x20)
	require.True(t, base.ChecksumValid())

	mutations := map[string]func(r *RawRecord){
		"byte count":  func(r *RawRecord) { r.ByteCount++ },
		"offset high": func(r *RawRecord) { r.LoadOffset += 0x0100 },
		"offset low":  func(r *RawRecord) { r.LoadOffset++ },
		"type":        func(r *RawRecord) { r.Type = TypeEndOfFile },
		"data":        func(r *RawRecord) { r.Data = []byte{0x10, 0x21} },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			r := base
			r.Data = append([]byte(nil), base.Data...)
			mutate(&r)
			assert.False(t, r.ChecksumValid())
		})
	}
}

func TestChecksumSumsToZero(t *testing.T) {
	for offset := 0; offset < 0x10000; offset += 0x0FF1 {
		data := []byte{byte(offset), byte(offset >> 3), 0xFF, 0x00}
		r := rawRecord(TypeData, uint16(offset), data...)

		sum := r.ByteCount + byte(r.LoadOffset>>8) + byte(r.LoadOffset) + byte(r.Type) + r.Checksum
		for _, b := range r.Data {
			sum += b
		}
		if sum != 0 {
			t.Errorf("offset 0x%04X: record sums to 0x%02X, want 0x00", offset, sum)
		}
	}
}

func BenchmarkComputeChecksum(b *testing.B) {
	data := make([]byte, 255)
	for i := range data {
		data[i] = byte(i)
	}
	r := rawRecord(TypeData, 0, data...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ComputeChecksum()
	}
}
