package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie carrying the admin session marker.
const SessionCookieName = "admin_session"

// SessionTTL is the fixed validity window of a session marker.
const SessionTTL = 6 * time.Hour

var (
	jwtSecret     []byte
	adminUsername string
	adminPassHash []byte
)

// Configure installs the signing secret and the single admin credential
// pair. The password is bcrypt-hashed here once so login comparisons never
// touch the plaintext again.
func Configure(secret, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	jwtSecret = []byte(secret)
	adminUsername = username
	adminPassHash = hash
	return nil
}

// VerifyCredentials reports whether the pair matches the configured admin.
// Both checks always run so a mismatch does not reveal which field was wrong.
func VerifyCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(adminUsername)) == 1
	passOK := bcrypt.CompareHashAndPassword(adminPassHash, []byte(password)) == nil
	return userOK && passOK
}

// GenerateSessionToken mints a signed session marker valid for SessionTTL.
func GenerateSessionToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": adminUsername,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateSessionToken reports whether the marker is well-formed, carries a
// valid signature and has not expired.
func ValidateSessionToken(tokenStr string) bool {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	return err == nil && token.Valid
}
