package ecc

// padWithZeros pads b with leading zeros to the given size. Secrets and
// coordinates are fixed-width byte strings, but big.Int.Bytes drops leading
// zeros.
func padWithZeros(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	padded := make([]byte, size)
	copy(padded[size-len(b):], b)
	return padded
}
