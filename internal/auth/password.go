package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies salted password digests. New digests always
// use bcrypt; verification additionally accepts argon2id digests written by
// earlier deployments so stored credentials survive the scheme migration.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns a salted bcrypt digest of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest under the digest's own
// scheme. Unknown schemes verify as false, never as an error the caller
// could leak.
func (h *Hasher) Verify(plaintext, digest string) bool {
	if strings.HasPrefix(digest, "$argon2id$") {
		return verifyArgon2id(plaintext, digest)
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// NeedsRehash reports whether digest uses a deprecated scheme and should be
// rewritten with the current one on next successful verification.
func (h *Hasher) NeedsRehash(digest string) bool {
	return !strings.HasPrefix(digest, "$2")
}

// verifyArgon2id checks plaintext against an encoded argon2id digest of the
// form $argon2id$v=19$t=<t>,m=<m>,p=<p>$<salt-b64>$<hash-b64>.
func verifyArgon2id(plaintext, digest string) bool {
	var (
		time    uint32
		memory  uint32
		threads uint8
		saltB64 string
		hashB64 string
	)

	_, err := fmt.Sscanf(digest, "$argon2id$v=19$t=%d,m=%d,p=%d$%s", &time, &memory, &threads, &saltB64)
	if err != nil {
		return false
	}
	// Sscanf stops %s at whitespace, so split the trailing salt$hash pair by hand.
	parts := strings.Split(saltB64, "$")
	if len(parts) != 2 {
		return false
	}
	saltB64, hashB64 = parts[0], parts[1]

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(expected, computed) == 1
}

// EncodeArgon2id writes an argon2id digest in the legacy encoded form. Kept
// for migration tooling and tests; new digests come from Hash.
func EncodeArgon2id(plaintext string, salt []byte, time, memory uint32, threads uint8, keyLen uint32) string {
	hash := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, keyLen)
	return fmt.Sprintf("$argon2id$v=19$t=%d,m=%d,p=%d$%s$%s",
		time, memory, threads,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(hash))
}
