package common

// WipeByteArray zeroes b in place.
func WipeByteArray(b []byte) {
	clear(b)
}
