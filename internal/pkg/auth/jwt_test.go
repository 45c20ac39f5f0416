package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "jdoe", "teacher")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "jdoe" {
		t.Errorf("Username = %q, want %q", claims.Username, "jdoe")
	}
	if claims.Role != "teacher" {
		t.Errorf("Role = %q, want %q", claims.Role, "teacher")
	}
	if claims.ID == "" {
		t.Error("Token should carry a unique id")
	}
}

func TestJWTService_BootstrapTokenOmitsUserID(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, _, err := svc.GenerateToken(0, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 0 {
		t.Errorf("UserID = %d, want 0", claims.UserID)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "jdoe", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour, TokenIssuer: "test"})

	token, _, err := svc.GenerateToken(1, "jdoe", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, _, err := svc.GenerateToken(1, "jdoe", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.ValidateToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTService_RejectsInvalidInputs(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.ValidateToken(tc.token); err == nil {
				t.Error("ValidateToken should reject the token")
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc123", "abc123", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc123", "", true},
		{"wrong scheme", "Basic abc123", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Error("ExtractBearerToken should return an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("token = %q, want %q", got, tc.want)
			}
		})
	}
}
