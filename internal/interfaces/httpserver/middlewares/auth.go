package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"foodatlas-server/internal/domain"
	domainauth "foodatlas-server/internal/domain/auth"
	authinfra "foodatlas-server/internal/infrastructure/auth"
	"foodatlas-server/internal/infrastructure/metrics"
	"foodatlas-server/internal/interfaces/httpserver/responses"
)

const principalContextKey = "principal"

// AuthRequired gates a route on the full token-then-cookie resolver chain.
// Token verification failures fall through to the cookie silently; only a
// store fault surfaces as an error response.
func AuthRequired(resolver *domainauth.Resolver, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := resolver.Resolve(c.Request.Context(), credentialsFromRequest(c))
		if err != nil {
			logger.Error().Err(err).
				Str("path", c.FullPath()).
				Msg("auth resolution store fault")
			metrics.RecordAuthResolution("chain", "fault")
			responses.HandleError(c, err, "Internal Server Error")
			return
		}

		if !res.Authenticated {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			metrics.RecordAuthResolution("chain", "rejected")
			responses.Message(c, http.StatusUnauthorized, "Authentication required. Please log in.")
			return
		}

		metrics.RecordAuthResolution(string(res.Principal.AuthMethod), "granted")
		setPrincipal(c, res.Principal)
		c.Next()
	}
}

// CookieAuthRequired gates a route on cookie resolution only, with no token
// fallback. A cookie naming a missing user is cleared so stale cookies
// self-heal on the client.
func CookieAuthRequired(resolver *domainauth.Resolver, cookies *authinfra.CookiePolicy, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := credentialsFromRequest(c)
		if creds.CookieUsername == "" {
			metrics.RecordAuthResolution(string(domain.AuthMethodCookie), "rejected")
			responses.Message(c, http.StatusUnauthorized, "Authentication required. No cookie found.")
			return
		}

		res, err := resolver.ResolveCookieOnly(c.Request.Context(), creds)
		if err != nil {
			logger.Error().Err(err).
				Str("path", c.FullPath()).
				Msg("cookie auth resolution store fault")
			metrics.RecordAuthResolution(string(domain.AuthMethodCookie), "fault")
			responses.HandleError(c, err, "Internal Server Error")
			return
		}

		if !res.Authenticated {
			if res.ClearCookie {
				http.SetCookie(c.Writer, cookies.Clear())
				metrics.RecordStaleCookieCleared()
			}
			metrics.RecordAuthResolution(string(domain.AuthMethodCookie), "rejected")
			responses.Message(c, http.StatusUnauthorized, "Invalid authentication. User not found.")
			return
		}

		metrics.RecordAuthResolution(string(domain.AuthMethodCookie), "granted")
		setPrincipal(c, res.Principal)
		c.Next()
	}
}

// RefreshCookie renews the session cookie expiry whenever one is present. It
// is advisory only: it never gates the request and makes no auth decision.
func RefreshCookie(cookies *authinfra.CookiePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username, err := c.Cookie(authinfra.SessionCookieName); err == nil && username != "" {
			http.SetCookie(c.Writer, cookies.Refresh(username))
		}
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}

func setPrincipal(c *gin.Context, principal domain.Principal) {
	c.Set(principalContextKey, principal)
	c.Writer.Header().Set("X-Auth-Method", string(principal.AuthMethod))
}

func credentialsFromRequest(c *gin.Context) domainauth.Credentials {
	creds := domainauth.Credentials{}

	authHeader := c.GetHeader("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		creds.BearerToken = strings.TrimSpace(parts[1])
	}

	if username, err := c.Cookie(authinfra.SessionCookieName); err == nil {
		creds.CookieUsername = username
	}

	return creds
}
