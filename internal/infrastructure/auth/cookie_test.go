package auth

import (
	"net/http"
	"testing"
	"time"
)

func TestCookiePolicy_Issue(t *testing.T) {
	t.Parallel()

	policy := NewCookiePolicy(false, 24*time.Hour)
	cookie := policy.Issue("alice")

	if cookie.Name != SessionCookieName {
		t.Fatalf("name mismatch: got %q", cookie.Name)
	}
	if cookie.Value != "alice" {
		t.Fatalf("value mismatch: got %q", cookie.Value)
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("max-age mismatch: got %d want 86400", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("same-site mismatch: got %v", cookie.SameSite)
	}
	if cookie.Secure {
		t.Fatalf("secure must be off outside production")
	}
}

func TestCookiePolicy_SecureInProduction(t *testing.T) {
	t.Parallel()

	cookie := NewCookiePolicy(true, 24*time.Hour).Issue("alice")
	if !cookie.Secure {
		t.Fatalf("secure must be on in production")
	}
}

func TestCookiePolicy_RefreshIsIdempotent(t *testing.T) {
	t.Parallel()

	policy := NewCookiePolicy(false, 24*time.Hour)
	for i := 0; i < 3; i++ {
		cookie := policy.Refresh("alice")
		if cookie.Value != "alice" || cookie.MaxAge != 86400 {
			t.Fatalf("refresh %d changed the directive: %+v", i, cookie)
		}
	}
}

func TestCookiePolicy_Clear(t *testing.T) {
	t.Parallel()

	cookie := NewCookiePolicy(true, 24*time.Hour).Clear()
	if cookie.Value != "" {
		t.Fatalf("clear directive must carry an empty value")
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("clear directive must expire the cookie, got max-age %d", cookie.MaxAge)
	}
}
