package ihex

// calculateChecksum computes the 8-bit Intel HEX checksum of the given bytes.
// Uses basic summation with 2's complement.
func calculateChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1 // 2's complement
}

// ComputeChecksum derives the checksum from the record fields.
//
// The checksum covers the byte count, both load offset bytes, the record type and every
// data byte.
func (r RawRecord) ComputeChecksum() byte {
	sum := r.ByteCount + byte(r.LoadOffset>>8) + byte(r.LoadOffset) + byte(r.Type)
	return calculateChecksum(r.Data) - sum
}

// ChecksumValid reports whether the stored checksum matches the computed one.
func (r RawRecord) ChecksumValid() bool {
	return r.ComputeChecksum() == r.Checksum
}
