package utils

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	issued, err := NewAccessToken(testAccessSecret, 42, "alice@example.com", "USER", 24)
	if err != nil {
		t.Fatalf("NewAccessToken() unexpected error: %v", err)
	}
	if issued.Token == "" {
		t.Fatal("NewAccessToken() returned empty token")
	}

	claims, err := VerifyAccessToken(testAccessSecret, issued.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "alice@example.com")
	}
	if claims.Role != "USER" {
		t.Errorf("Role = %q, want USER", claims.Role)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	issued, err := NewRefreshToken(testRefreshSecret, 7, 7)
	if err != nil {
		t.Fatalf("NewRefreshToken() unexpected error: %v", err)
	}

	userID, err := VerifyRefreshToken(testRefreshSecret, issued.Token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken() unexpected error: %v", err)
	}
	if userID != 7 {
		t.Errorf("userID = %d, want 7", userID)
	}
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	issued, err := NewAccessToken(testAccessSecret, 42, "a@b.c", "USER", 1)
	if err != nil {
		t.Fatalf("NewAccessToken() unexpected error: %v", err)
	}

	_, err = VerifyAccessToken("some-other-secret", issued.Token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestSecretsAreIndependent(t *testing.T) {
	// An access token must not verify against the refresh secret and vice
	// versa; a leaked secret for one token type cannot forge the other.
	access, err := NewAccessToken(testAccessSecret, 42, "a@b.c", "ADMIN", 1)
	if err != nil {
		t.Fatalf("NewAccessToken() unexpected error: %v", err)
	}
	if _, err := VerifyRefreshToken(testRefreshSecret, access.Token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyRefreshToken(access token) error = %v, want ErrTokenInvalid", err)
	}

	refresh, err := NewRefreshToken(testRefreshSecret, 42, 7)
	if err != nil {
		t.Fatalf("NewRefreshToken() unexpected error: %v", err)
	}
	if _, err := VerifyAccessToken(testAccessSecret, refresh.Token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccessToken(refresh token) error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	issued, err := NewAccessToken(testAccessSecret, 42, "a@b.c", "USER", -1)
	if err != nil {
		t.Fatalf("NewAccessToken() unexpected error: %v", err)
	}

	_, err = VerifyAccessToken(testAccessSecret, issued.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyRefreshTokenExpired(t *testing.T) {
	issued, err := NewRefreshToken(testRefreshSecret, 42, -1)
	if err != nil {
		t.Fatalf("NewRefreshToken() unexpected error: %v", err)
	}

	_, err = VerifyRefreshToken(testRefreshSecret, issued.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyRefreshToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyAccessTokenMalformed(t *testing.T) {
	_, err := VerifyAccessToken(testAccessSecret, "not-a-jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyAccessTokenWrongMethod(t *testing.T) {
	// Tokens signed with "none" must be rejected even though they parse.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 42})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := VerifyAccessToken(testAccessSecret, raw); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyAccessTokenMissingSubject(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.c"})
	raw, err := tok.SignedString([]byte(testAccessSecret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := VerifyAccessToken(testAccessSecret, raw); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}
