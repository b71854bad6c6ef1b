// Package fingerprint mints anonymous session fingerprints for page-view
// analytics. A fingerprint identifies a browsing session, not a device or a
// user, and is distinct from the authenticated session.
//
// Fingerprints are practically unique, not cryptographically unique: a
// rolling hash over the client IP, user agent, and mint timestamp is
// combined with a random salt and base-36 encoded. Do not use them for
// anything security-sensitive.
package fingerprint

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	// fingerprintVersion prefixes every minted fingerprint so the format
	// can evolve without invalidating stored values.
	fingerprintVersion = "v1:"

	// FNV-1a parameters for the rolling hash.
	offset64 = 14695981039346656037
	prime64  = 1099511628211

	// maxFingerprintLen bounds a well-formed fingerprint: prefix plus two
	// base-36 encoded 64-bit values (13 digits each at most).
	maxFingerprintLen = len(fingerprintVersion) + 26
)

// New mints a session fingerprint from the client IP and user agent.
// Each call produces a distinct value: the mint timestamp and a random salt
// are folded into the hash.
func New(ip, userAgent string) string {
	return mint(ip, userAgent, time.Now().UnixNano(), rand.Uint64())
}

// mint is the pure minting function. Identical inputs produce identical
// fingerprints, which keeps the format testable.
func mint(ip, userAgent string, ts int64, salt uint64) string {
	// Pipe delimiter prevents ("ab","c") and ("a","bc") from colliding
	input := ip + "|" + userAgent + "|" + strconv.FormatInt(ts, 10)

	h := uint64(offset64)
	for i := 0; i < len(input); i++ {
		h ^= uint64(input[i])
		h *= prime64
	}

	return fingerprintVersion + strconv.FormatUint(h^salt, 36) + strconv.FormatUint(salt, 36)
}

// IsValid reports whether s looks like a fingerprint minted by this package.
// It validates format only; a valid-looking fingerprint carries no proof of
// origin.
func IsValid(s string) bool {
	if !strings.HasPrefix(s, fingerprintVersion) {
		return false
	}
	body := s[len(fingerprintVersion):]
	if body == "" || len(s) > maxFingerprintLen {
		return false
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
