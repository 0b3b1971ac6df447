package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContact returns a short SHA-256 digest of a contact value
// (email or phone). Log lines carry these digests instead of the raw
// values, so the same lead can be correlated across entries without
// writing PII to the logs.
func HashContact(input string) string {
	if input == "" {
		return "-"
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])[:12]
}
