package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dimasarya/panelstore/internal/auth"
	"github.com/dimasarya/panelstore/internal/http/ban"
)

// LoginHandler godoc
// @Summary Authenticate the admin and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {object} LoginResult
// @Failure 429 {object} LoginResult
// @Router /admin/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if ban.IsBanned(ip) {
		_ = writeJSON(w, http.StatusTooManyRequests, LoginResult{
			Success: false,
			Message: "too many failed attempts, try again later",
		})
		return
	}

	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		fail(w, http.StatusBadRequest, "invalid input")
		return
	}

	if !auth.VerifyCredentials(creds.Username, creds.Password) {
		ban.RecordFailure(ip, r.URL.Path)
		// one generic message, never which field was wrong
		_ = writeJSON(w, http.StatusUnauthorized, LoginResult{
			Success: false,
			Message: "invalid username or password",
		})
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		log.Errorw("could not generate session token", "error", err)
		fail(w, http.StatusInternalServerError, "server error")
		return
	}
	ban.Reset(ip)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	_ = writeJSON(w, http.StatusOK, LoginResult{Success: true})
}

// LogoutHandler godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} LoginResult
// @Router /admin/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	_ = writeJSON(w, http.StatusOK, LoginResult{Success: true})
}

// CheckHandler godoc
// @Summary Report whether the request carries a valid session
// @Tags auth
// @Produce json
// @Success 200 {object} CheckResult
// @Router /admin/check [get]
func CheckHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, CheckResult{Auth: HasValidSession(r)})
}

// HasValidSession reports whether the request carries a valid, unexpired
// session cookie. Shared with the RequireSession middleware.
func HasValidSession(r *http.Request) bool {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return auth.ValidateSessionToken(cookie.Value)
}
