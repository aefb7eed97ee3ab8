// Package uuid generates the identifiers shared by the two legs of a transfer.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// NewTransferID returns a fresh UUIDv7 string. Version 7 identifiers sort by
// creation time, so ordering transfers by id also orders them chronologically.
//
// Format (RFC 9562):
// - 48 bits: Unix timestamp in milliseconds
// - 4 bits: version (0111 = 7)
// - 12 bits: random data
// - 2 bits: variant (10)
// - 62 bits: random data
func NewTransferID() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the v7 clock sequence cannot be read
		return googleuuid.NewString()
	}
	return id.String()
}

// Normalize validates s and returns its canonical lower-case form.
func Normalize(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
