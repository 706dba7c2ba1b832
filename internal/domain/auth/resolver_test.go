package auth

import (
	"context"
	"errors"
	"testing"

	"foodatlas-server/internal/domain"
	"foodatlas-server/internal/domain/user"
)

type stubVerifier struct {
	claims map[string]TokenClaims
}

func (v *stubVerifier) Verify(token string) (TokenClaims, error) {
	claims, ok := v.claims[token]
	if !ok {
		return TokenClaims{}, errors.New("invalid token")
	}
	return claims, nil
}

type mockUserRepository struct {
	byID       map[string]*user.User
	byUsername map[string]*user.User
	err        error
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	repo := &mockUserRepository{
		byID:       make(map[string]*user.User),
		byUsername: make(map[string]*user.User),
	}
	for _, usr := range users {
		repo.byID[usr.ID] = usr
		repo.byUsername[usr.Username] = usr
	}
	return repo
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byID[id], nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byUsername[username], nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) Create(ctx context.Context, usr *user.User) (*user.User, error) {
	return usr, nil
}
func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (m *mockUserRepository) Delete(ctx context.Context, id string) error    { return nil }

var (
	alice = &user.User{ID: "id-alice", Username: "alice", Email: "a@x.com", Role: domain.RoleStandard}
	bob   = &user.User{ID: "id-bob", Username: "bob", Email: "b@x.com", Role: domain.RoleStandard}
)

func newTestResolver(repo *mockUserRepository) *Resolver {
	verifier := &stubVerifier{claims: map[string]TokenClaims{
		"token-alice":   {Subject: "id-alice", Role: "standard"},
		"token-missing": {Subject: "id-ghost", Role: "standard"},
	}}
	return NewResolver(verifier, repo)
}

func TestResolve_TokenWinsOverCookie(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice, bob))
	res, err := resolver.Resolve(context.Background(), Credentials{
		BearerToken:    "token-alice",
		CookieUsername: "bob",
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !res.Authenticated {
		t.Fatalf("expected authenticated resolution")
	}
	if res.Principal.ID != "id-alice" {
		t.Fatalf("principal mismatch: got %q want %q", res.Principal.ID, "id-alice")
	}
	if res.Principal.AuthMethod != domain.AuthMethodToken {
		t.Fatalf("auth method mismatch: got %q want token", res.Principal.AuthMethod)
	}
}

func TestResolve_InvalidTokenFallsBackToCookie(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice, bob))
	res, err := resolver.Resolve(context.Background(), Credentials{
		BearerToken:    "garbage",
		CookieUsername: "bob",
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !res.Authenticated || res.Principal.Username != "bob" {
		t.Fatalf("expected cookie fallback to bob, got %+v", res)
	}
	if res.Principal.AuthMethod != domain.AuthMethodCookie {
		t.Fatalf("auth method mismatch: got %q want cookie", res.Principal.AuthMethod)
	}
}

func TestResolve_TokenSubjectMissingFallsBackToCookie(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice, bob))
	res, err := resolver.Resolve(context.Background(), Credentials{
		BearerToken:    "token-missing",
		CookieUsername: "alice",
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !res.Authenticated || res.Principal.Username != "alice" {
		t.Fatalf("expected cookie fallback to alice, got %+v", res)
	}
}

func TestResolve_CookieUserMissingRejects(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice))
	res, err := resolver.Resolve(context.Background(), Credentials{CookieUsername: "ghost"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if res.Authenticated {
		t.Fatalf("expected rejection for cookie naming a missing user")
	}
}

func TestResolve_NoCredentialsRejects(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice))
	res, err := resolver.Resolve(context.Background(), Credentials{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if res.Authenticated {
		t.Fatalf("expected rejection without credentials")
	}
}

func TestResolve_StoreFaultIsNotRejection(t *testing.T) {
	t.Parallel()

	repo := newMockUserRepository(alice)
	repo.err = errors.New("connection refused")
	resolver := newTestResolver(repo)

	_, err := resolver.Resolve(context.Background(), Credentials{BearerToken: "token-alice"})
	if err == nil {
		t.Fatalf("expected store fault to propagate as an error")
	}
}

func TestResolveCookieOnly_StaleCookieClears(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice))
	res, err := resolver.ResolveCookieOnly(context.Background(), Credentials{CookieUsername: "ghost"})
	if err != nil {
		t.Fatalf("ResolveCookieOnly error: %v", err)
	}
	if res.Authenticated {
		t.Fatalf("expected rejection for stale cookie")
	}
	if !res.ClearCookie {
		t.Fatalf("expected clear-cookie directive for stale cookie")
	}
}

func TestResolveCookieOnly_IgnoresToken(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice))
	res, err := resolver.ResolveCookieOnly(context.Background(), Credentials{BearerToken: "token-alice"})
	if err != nil {
		t.Fatalf("ResolveCookieOnly error: %v", err)
	}
	if res.Authenticated {
		t.Fatalf("expected rejection: cookie-only path must not accept tokens")
	}
	if res.ClearCookie {
		t.Fatalf("no cookie present, nothing to clear")
	}
}

func TestResolveCookieOnly_ValidCookie(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(newMockUserRepository(alice))
	res, err := resolver.ResolveCookieOnly(context.Background(), Credentials{CookieUsername: "alice"})
	if err != nil {
		t.Fatalf("ResolveCookieOnly error: %v", err)
	}
	if !res.Authenticated || res.Principal.AuthMethod != domain.AuthMethodCookie {
		t.Fatalf("expected cookie-authenticated alice, got %+v", res)
	}
}

func TestCanMutate(t *testing.T) {
	t.Parallel()

	if CanMutate(domain.Principal{}) {
		t.Fatalf("anonymous principal must not mutate")
	}
	if !CanMutate(alice.Principal(domain.AuthMethodCookie)) {
		t.Fatalf("any authenticated principal may mutate")
	}
}
