package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Every stored credential uses a per-user random salt;
// the old single-round static-salt scheme is not supported.
const (
	PasswordIterations = 210000
	SaltLength         = 16
	KeyLength          = 32
)

// HashPassword derives a hash for the password. When salt is empty a fresh
// random salt is generated. Both values are returned hex-encoded.
func HashPassword(password, salt string) (hash string, outSalt string, err error) {
	var saltBytes []byte
	if salt == "" {
		saltBytes = make([]byte, SaltLength)
		if _, err := rand.Read(saltBytes); err != nil {
			return "", "", fmt.Errorf("failed to generate salt: %w", err)
		}
	} else {
		saltBytes, err = hex.DecodeString(salt)
		if err != nil {
			return "", "", fmt.Errorf("invalid salt encoding: %w", err)
		}
	}

	key := pbkdf2.Key([]byte(password), saltBytes, PasswordIterations, KeyLength, sha256.New)
	return hex.EncodeToString(key), hex.EncodeToString(saltBytes), nil
}

// CheckPassword recomputes the hash for (password, salt) and compares it
// against the stored hash in constant time.
func CheckPassword(password, storedHash, salt string) bool {
	computed, _, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
