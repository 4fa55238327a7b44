package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const idLength = 24

// NewID generates a 24-character lowercase hexadecimal identifier.
func NewID() string {
	b := make([]byte, idLength/2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("generating identifier: %v", err))
	}
	return hex.EncodeToString(b)
}

// ValidID reports whether s is a well-formed 24-character hex identifier.
func ValidID(s string) bool {
	if len(s) != idLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
