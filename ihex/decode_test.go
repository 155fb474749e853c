package ihex

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    RawRecord
		wantErr error
	}{
		{
			name: "data record",
			line: ":0300300002337A1E",
			want: RawRecord{
				ByteCount:  0x03,
				LoadOffset: 0x0030,
				Type:       TypeData,
				Data:       []byte{0x02, 0x33, 0x7A},
				Checksum:   0x1E,
			},
		},
		{
			name: "end of file",
			line: ":00000001FF",
			want: RawRecord{
				Type:     TypeEndOfFile,
				Data:     []byte{},
				Checksum: 0xFF,
			},
		},
		{
			name: "lowercase hex",
			line: ":020000040800f2",
			want: RawRecord{
				ByteCount: 0x02,
				Type:      TypeExtendedLinearAddress,
				Data:      []byte{0x08, 0x00},
				Checksum:  0xF2,
			},
		},
		{
			name: "bad checksum is not checked here",
			line: ":0300300002337AFF",
			want: RawRecord{
				ByteCount:  0x03,
				LoadOffset: 0x0030,
				Type:       TypeData,
				Data:       []byte{0x02, 0x33, 0x7A},
				Checksum:   0xFF,
			},
		},
		{
			name:    "non-ascii",
			line:    ":00000001FFé",
			wantErr: ErrNonASCII,
		},
		{
			name:    "missing start code",
			line:    "00000001FF",
			wantErr: ErrMissingStartCode,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: ErrMissingStartCode,
		},
		{
			name:    "non-hex",
			line:    ":00000001FG",
			wantErr: ErrNonHex,
		},
		{
			name:    "odd hex length",
			line:    ":0000001FF",
			wantErr: ErrNonHex,
		},
		{
			name:    "bare start code",
			line:    ":",
			wantErr: ErrRecordTooShort,
		},
		{
			name:    "header only",
			line:    ":000000FF",
			wantErr: ErrRecordTooShort,
		},
		{
			name:    "byte count larger than data",
			line:    ":02000000FE",
			wantErr: ErrDataLength,
		},
		{
			name:    "byte count smaller than data",
			line:    ":010000000102FC",
			wantErr: ErrDataLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLine(tt.line)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsStructural(err), "expected structural error, got %v", err)
				assert.False(t, IsSemantic(err))
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeLine() mismatch (-want +got):\n%s", diff)
			}
			assert.Len(t, got.Data, int(got.ByteCount))
		})
	}
}

func TestDecodeLineKeepsHexError(t *testing.T) {
	_, err := DecodeLine(":00000001FG")
	require.Error(t, err)

	var invalid hex.InvalidByteError
	require.True(t, errors.As(err, &invalid), "hex error not wrapped: %v", err)
	assert.Equal(t, hex.InvalidByteError('G'), invalid)

	_, err = DecodeLine(":0000001FF")
	assert.ErrorIs(t, err, hex.ErrLength)
}

func TestDecodeLineMaximumRecord(t *testing.T) {
	data := make([]byte, 255)
	for i := range data {
		data[i] = byte(i)
	}

	got, err := DecodeLine(recordLine(TypeData, 0xFF00, data...))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), got.ByteCount)
	assert.Equal(t, uint16(0xFF00), got.LoadOffset)
	assert.Equal(t, data, got.Data)
	assert.True(t, got.ChecksumValid())
}

func BenchmarkDecodeLine(b *testing.B) {
	line := ":10010000214601360121470136007EFE09D2190140"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeLine(line)
	}
}
