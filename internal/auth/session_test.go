package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func configureTest(t *testing.T) {
	t.Helper()
	if err := Configure("test-secret", "admin", "rahasia"); err != nil {
		t.Fatalf("configure: %v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	configureTest(t)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid pair", "admin", "rahasia", true},
		{"wrong password", "admin", "nope", false},
		{"wrong username", "root", "rahasia", false},
		{"both wrong", "root", "nope", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyCredentials(tt.username, tt.password); got != tt.want {
				t.Errorf("VerifyCredentials(%q, _) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	configureTest(t)

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !ValidateSessionToken(token) {
		t.Error("freshly minted token should validate")
	}
}

func TestValidateSessionTokenRejectsExpired(t *testing.T) {
	configureTest(t)

	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	if ValidateSessionToken(expired) {
		t.Error("expired token should not validate")
	}
}

func TestValidateSessionTokenRejectsForgedSignature(t *testing.T) {
	configureTest(t)

	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("signing forged token: %v", err)
	}
	if ValidateSessionToken(forged) {
		t.Error("token signed with another secret should not validate")
	}

	if ValidateSessionToken("not-a-token") {
		t.Error("garbage should not validate")
	}
}
