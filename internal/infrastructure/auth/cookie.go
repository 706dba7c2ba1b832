package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the client-held marker naming the session's username.
const SessionCookieName = "username"

// CookiePolicy centralizes the transport attributes of the session cookie:
// HttpOnly, SameSite=Lax, Secure only in production deployments.
type CookiePolicy struct {
	secure bool
	maxAge time.Duration
}

// NewCookiePolicy constructs the policy. secure gates the Secure attribute and
// should be true only for production deployments.
func NewCookiePolicy(secure bool, maxAge time.Duration) *CookiePolicy {
	return &CookiePolicy{secure: secure, maxAge: maxAge}
}

// Issue builds a Set-Cookie directive naming the username.
func (p *CookiePolicy) Issue(username string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    username,
		Path:     "/",
		MaxAge:   int(p.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Refresh re-issues the cookie with a renewed expiry. Refreshing is idempotent
// with respect to the cookie value.
func (p *CookiePolicy) Refresh(username string) *http.Cookie {
	return p.Issue(username)
}

// Clear builds a removal directive. Used on logout and when a cookie names a
// user that no longer exists.
func (p *CookiePolicy) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
