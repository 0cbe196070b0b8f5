// Package common holds small helpers shared by the client packages.
package common

// WipeByteArray zeroes b in place. Used to scrub passwords once a prompt's
// value has been handed to the auth service. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
