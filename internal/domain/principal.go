package domain

// AuthMethod describes how a caller authenticated with the API. Token and
// cookie resolution carry different trust guarantees: a token proves
// possession of a signed credential, a cookie is only a store-verified name.
type AuthMethod string

const (
	AuthMethodToken  AuthMethod = "token"
	AuthMethodCookie AuthMethod = "cookie"
)

// Role is the single-flag role model of the catalog service.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Principal captures normalized caller identity independent of auth mechanism.
// It is built fresh for every request and never persisted.
type Principal struct {
	ID         string
	Username   string
	Email      string
	Role       Role
	AuthMethod AuthMethod
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
