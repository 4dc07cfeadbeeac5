// Package common contains small helpers shared across client layers.
package common

// WipeByteArray zeroes the buffer in place. Call it on password buffers
// as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
