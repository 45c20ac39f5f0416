package auth

import (
	"encoding/hex"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, salt, err := HashPassword("correct horse battery staple", "")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword("correct horse battery staple", hash, salt) {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword("wrong password", hash, salt) {
		t.Error("CheckPassword should reject a wrong password")
	}
}

func TestHashPassword_GeneratesRandomSalt(t *testing.T) {
	hash1, salt1, err := HashPassword("secret", "")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	hash2, salt2, err := HashPassword("secret", "")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if salt1 == salt2 {
		t.Error("Fresh salts should differ between calls")
	}
	if hash1 == hash2 {
		t.Error("Same password with different salts should produce different hashes")
	}

	saltBytes, err := hex.DecodeString(salt1)
	if err != nil {
		t.Fatalf("Salt is not hex encoded: %v", err)
	}
	if len(saltBytes) != SaltLength {
		t.Errorf("Salt length = %d, want %d", len(saltBytes), SaltLength)
	}
}

func TestHashPassword_DeterministicWithSalt(t *testing.T) {
	_, salt, err := HashPassword("secret", "")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	hash1, outSalt, err := HashPassword("secret", salt)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	hash2, _, err := HashPassword("secret", salt)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash1 != hash2 {
		t.Error("Same password and salt should produce the same hash")
	}
	if outSalt != salt {
		t.Errorf("Provided salt should be returned unchanged, got %q want %q", outSalt, salt)
	}
}

func TestHashPassword_InvalidSaltEncoding(t *testing.T) {
	if _, _, err := HashPassword("secret", "not-hex!"); err == nil {
		t.Error("HashPassword should reject a non-hex salt")
	}
}

func TestCheckPassword_EmptyInputs(t *testing.T) {
	hash, salt, err := HashPassword("secret", "")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if CheckPassword("", hash, salt) {
		t.Error("Empty password should not verify")
	}
	if CheckPassword("secret", "", salt) {
		t.Error("Empty stored hash should not verify")
	}
	if CheckPassword("secret", hash, "bad salt") {
		t.Error("Undecodable salt should not verify")
	}
}
