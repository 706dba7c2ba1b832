// Package auth implements credential resolution: the ordered strategy chain
// that turns a request's bearer token and/or session cookie into a Principal.
package auth

import (
	"context"

	"foodatlas-server/internal/domain"
	"foodatlas-server/internal/domain/user"
)

// TokenClaims is the verified payload of a bearer token.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenVerifier validates a bearer token. Any verification failure is returned
// as a single opaque error; callers must not distinguish failure causes.
type TokenVerifier interface {
	Verify(token string) (TokenClaims, error)
}

// Credentials are the optional auth inputs extracted from a request.
type Credentials struct {
	BearerToken    string
	CookieUsername string
}

// Decision is the outcome of a single resolution strategy.
type Decision int

const (
	// DecisionDefer means the strategy could not authenticate and the next
	// strategy in the chain should run.
	DecisionDefer Decision = iota
	// DecisionAuthenticated terminates the chain with a principal.
	DecisionAuthenticated
	// DecisionReject terminates the chain without a principal.
	DecisionReject
)

// Resolution is the final outcome of running a resolver chain.
type Resolution struct {
	Authenticated bool
	Principal     domain.Principal

	// ClearCookie instructs the transport layer to remove the session cookie.
	// Set when a cookie names a user that no longer exists, so stale cookies
	// self-heal. Clearing is idempotent, so concurrent requests bearing the
	// same stale cookie may each request it.
	ClearCookie bool
}

// Resolver chains credential strategies over the credential store. It holds no
// cross-request state; every call re-verifies against the store.
type Resolver struct {
	verifier TokenVerifier
	users    user.Repository
}

// NewResolver constructs a Resolver with required dependencies.
func NewResolver(verifier TokenVerifier, users user.Repository) *Resolver {
	return &Resolver{verifier: verifier, users: users}
}

type strategy func(ctx context.Context, creds Credentials) (Decision, domain.Principal, error)

// Resolve runs the full token-then-cookie chain. The chain stops at the first
// strategy that does not defer. A returned error is always a store fault and
// must surface as a service error, never as an unauthenticated rejection.
func (r *Resolver) Resolve(ctx context.Context, creds Credentials) (Resolution, error) {
	return r.run(ctx, creds, []strategy{r.resolveToken, r.resolveCookie})
}

// ResolveCookieOnly runs the cookie strategy alone, for routes that do not
// accept token auth. When the cookie names a missing user the resolution also
// carries a clear-cookie directive.
func (r *Resolver) ResolveCookieOnly(ctx context.Context, creds Credentials) (Resolution, error) {
	res, err := r.run(ctx, creds, []strategy{r.resolveCookie})
	if err != nil {
		return Resolution{}, err
	}
	if !res.Authenticated && creds.CookieUsername != "" {
		res.ClearCookie = true
	}
	return res, nil
}

func (r *Resolver) run(ctx context.Context, creds Credentials, chain []strategy) (Resolution, error) {
	for _, next := range chain {
		decision, principal, err := next(ctx, creds)
		if err != nil {
			return Resolution{}, err
		}
		switch decision {
		case DecisionAuthenticated:
			return Resolution{Authenticated: true, Principal: principal}, nil
		case DecisionReject:
			return Resolution{}, nil
		}
	}
	return Resolution{}, nil
}

// resolveToken authenticates via the Authorization header. Verification
// failures and unknown subjects both defer to the cookie strategy; the token
// path never rejects on its own.
func (r *Resolver) resolveToken(ctx context.Context, creds Credentials) (Decision, domain.Principal, error) {
	if creds.BearerToken == "" {
		return DecisionDefer, domain.Principal{}, nil
	}

	claims, err := r.verifier.Verify(creds.BearerToken)
	if err != nil {
		return DecisionDefer, domain.Principal{}, nil
	}

	usr, err := r.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return DecisionDefer, domain.Principal{}, err
	}
	if usr == nil {
		return DecisionDefer, domain.Principal{}, nil
	}

	return DecisionAuthenticated, usr.Principal(domain.AuthMethodToken), nil
}

// resolveCookie authenticates via the session cookie. The cookie only names a
// username, so the store lookup happens on every request; a cookie naming a
// missing user rejects outright.
func (r *Resolver) resolveCookie(ctx context.Context, creds Credentials) (Decision, domain.Principal, error) {
	if creds.CookieUsername == "" {
		return DecisionDefer, domain.Principal{}, nil
	}

	usr, err := r.users.FindByUsername(ctx, creds.CookieUsername)
	if err != nil {
		return DecisionDefer, domain.Principal{}, err
	}
	if usr == nil {
		return DecisionReject, domain.Principal{}, nil
	}

	return DecisionAuthenticated, usr.Principal(domain.AuthMethodCookie), nil
}

// CanMutate is the authorization gate for catalog mutations. The baseline rule
// is authentication only: ownership of the target entry is not checked.
func CanMutate(p domain.Principal) bool {
	return p.ID != ""
}
