package dump

import (
	"testing"

	farm "github.com/dgryski/go-farm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-ihex/ihex"
)

func TestSummarize(t *testing.T) {
	f := mustParse(t, ":020000040000FA\n"+
		":02000000AAAAAA\n"+
		":01000000BB44\n"+
		":04000005000000CD2A\n"+
		":0400000300003800C1\n"+
		":00000001FF\n")

	s, err := Summarize(f)
	require.NoError(t, err)

	assert.Equal(t, ihex.Type32Bit, s.Type)
	assert.Equal(t, 6, s.Records)
	assert.Equal(t, map[ihex.RecordType]int{
		ihex.TypeExtendedLinearAddress: 1,
		ihex.TypeData:                  2,
		ihex.TypeStartLinearAddress:    1,
		ihex.TypeStartSegmentAddress:   1,
		ihex.TypeEndOfFile:             1,
	}, s.Counts)
	assert.Equal(t, 3, s.DataBytes)
	assert.Equal(t, 2, s.ImageSize)
	assert.Equal(t, farm.Fingerprint64([]byte{0xBB, 0xAA}), s.Fingerprint)
	assert.Equal(t, ihex.StartLinearAddressRecord{EntryPoint: 0xCD}, s.Start)
	assert.Equal(t, "0x000000CD", s.StartString())
}

func TestSummarizeFingerprintTracksOrder(t *testing.T) {
	a, err := Summarize(mustParse(t, ":02000000AAAAAA\n:01000000BB44\n"))
	require.NoError(t, err)
	b, err := Summarize(mustParse(t, ":01000000BB44\n:02000000AAAAAA\n"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Fingerprint, b.Fingerprint)
}

func TestSummaryStartString(t *testing.T) {
	tests := []struct {
		name  string
		start ihex.StartAddress
		want  string
	}{
		{"none", nil, "none"},
		{"segment", ihex.StartSegmentAddressRecord{CodeSegment: 0x1234, InstructionPointer: 0x0010}, "1234:0010 (0x12350)"},
		{"linear", ihex.StartLinearAddressRecord{EntryPoint: 0x08000131}, "0x08000131"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary{Start: tt.start}.StartString())
		})
	}
}

func TestSummarizeNilFile(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
}
