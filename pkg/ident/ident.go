package ident

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a fresh record id. UUIDs replace the millisecond
// timestamps the web shell used, which collide under rapid programmatic
// creation.
func NewID() string {
	return uuid.NewString()
}

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// HashIP produces a short, irreversible hash prefix of an IP address for
// log correlation and rate-limit keys without storing raw PII.
func HashIP(ip string) string {
	return SHA256Hex(ip)[:12]
}
