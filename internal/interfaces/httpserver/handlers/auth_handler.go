package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"foodatlas-server/internal/domain/user"
	authinfra "foodatlas-server/internal/infrastructure/auth"
	"foodatlas-server/internal/interfaces/httpserver/middlewares"
	"foodatlas-server/internal/interfaces/httpserver/requests"
	"foodatlas-server/internal/interfaces/httpserver/responses"
)

// AuthHandler exposes the registration, login and session endpoints.
type AuthHandler struct {
	users   *user.Service
	codec   *authinfra.TokenCodec
	cookies *authinfra.CookiePolicy
	log     zerolog.Logger
}

func NewAuthHandler(users *user.Service, codec *authinfra.TokenCodec, cookies *authinfra.CookiePolicy, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:   users,
		codec:   codec,
		cookies: cookies,
		log:     log.With().Str("component", "auth-handler").Logger(),
	}
}

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

func summarize(usr *user.User) userSummary {
	return userSummary{
		ID:       usr.ID,
		Username: usr.Username,
		Email:    usr.Email,
		Role:     string(usr.Role),
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account and starts a session (token + cookie).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.Envelope
// @Failure      400  {object}  responses.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req requests.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, []responses.FieldError{{Field: "body", Message: "Request body is malformed"}})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		responses.ValidationFailed(c, errs)
		return
	}

	usr, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			responses.Message(c, http.StatusBadRequest, "Email already in use")
		case errors.Is(err, user.ErrUsernameTaken):
			responses.Message(c, http.StatusBadRequest, "Username already taken")
		default:
			h.log.Error().Err(err).Msg("registration failed")
			responses.HandleError(c, err, "Internal Server Error")
		}
		return
	}

	h.startSession(c, usr)
	responses.Created(c, "User registered successfully", h.sessionData(usr))
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      401  {object}  responses.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, []responses.FieldError{{Field: "body", Message: "Request body is malformed"}})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		responses.ValidationFailed(c, errs)
		return
	}

	usr, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// One message for both unknown email and wrong password.
			responses.Message(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		responses.HandleError(c, err, "Internal Server Error")
		return
	}

	h.startSession(c, usr)
	responses.OK(c, "Login successful", h.sessionData(usr))
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie; the client discards its token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, h.cookies.Clear())
	responses.OK(c, "Logged out successfully", nil)
}

// CheckAuth godoc
// @Summary      Report session state
// @Description  Reports authentication from cookie presence alone, without a
// store lookup.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /auth/check-auth [get]
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	username, err := c.Cookie(authinfra.SessionCookieName)
	if err != nil || username == "" {
		responses.OK(c, "Not authenticated", gin.H{"authenticated": false})
		return
	}
	responses.OK(c, "Authenticated", gin.H{"authenticated": true, "username": username})
}

// Profile godoc
// @Summary      Return the current session's user
// @Description  Cookie-authenticated only; stale cookies are cleared.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      401  {object}  responses.Envelope
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.Message(c, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}
	responses.OK(c, "Profile retrieved successfully", userSummary{
		ID:       principal.ID,
		Username: principal.Username,
		Email:    principal.Email,
		Role:     string(principal.Role),
	})
}

// ListUsers godoc
// @Summary      List all users
// @Description  Open listing used by the filter dropdown.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing users failed")
		responses.HandleError(c, err, "Internal Server Error")
		return
	}

	summaries := make([]userSummary, 0, len(users))
	for _, usr := range users {
		summaries = append(summaries, userSummary{ID: usr.ID, Username: usr.Username, Email: usr.Email})
	}
	responses.OK(c, "Users retrieved successfully", summaries)
}

// DeleteUser godoc
// @Summary      Delete a user account
// @Tags         admin
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      403  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /admin/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		responses.Message(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			responses.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("deleting user failed")
		responses.HandleError(c, err, "Internal Server Error")
		return
	}

	responses.OK(c, "User deleted successfully", nil)
}

func (h *AuthHandler) startSession(c *gin.Context, usr *user.User) {
	http.SetCookie(c.Writer, h.cookies.Issue(usr.Username))
}

func (h *AuthHandler) sessionData(usr *user.User) any {
	token, err := h.codec.Issue(usr.ID, string(usr.Role))
	if err != nil {
		// Issue only fails on a broken signer; the session cookie still stands.
		h.log.Error().Err(err).Msg("token issuance failed")
		return gin.H{"user": summarize(usr)}
	}
	return sessionResponse{Token: token, User: summarize(usr)}
}
