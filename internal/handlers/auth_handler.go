package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "twofold/internal/errors"
	"twofold/internal/middleware"
	"twofold/internal/services"
	"twofold/internal/session"
)

// AuthSettings controls how issued sessions are signed and stored.
type AuthSettings struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

// AuthHandler handles the shared-password login.
type AuthHandler struct {
	gate         *session.Gate
	userService  services.UserServicer
	auditService services.AuditServicer
	settings     AuthSettings
	now          func() time.Time
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(gate *session.Gate, userService services.UserServicer, auditService services.AuditServicer, settings AuthSettings) *AuthHandler {
	return &AuthHandler{
		gate:         gate,
		userService:  userService,
		auditService: auditService,
		settings:     settings,
		now:          time.Now,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required,max=128"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

// Login handles role login
// @Summary     Login
// @Description Exchange a role password for a session token. The token is also set as a cookie.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Role password"
// @Success     200 {object} AuthResponse "Session issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	role, err := h.gate.Authenticate(req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByRole(c.Request.Context(), role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sess := session.Session{
		UserID:    user.ID,
		Role:      user.Role,
		Name:      user.Name,
		ExpiresAt: h.now().Add(h.settings.TTL).UTC().Truncate(time.Second),
	}
	token, err := middleware.GenerateSessionToken(sess, h.settings.Secret)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(c.Request.Context(), sess, services.AuditActionLogin, "session", user.ID, c.ClientIP(), nil)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.settings.TTL.Seconds()), "/", "", h.settings.CookieSecure, true)
	c.JSON(http.StatusOK, AuthResponse{Token: token, Session: sess})
}

// Logout clears the session cookie
// @Summary     Logout
// @Description Clear the session cookie. Bearer tokens simply expire.
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Logged out"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.settings.CookieSecure, true)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// GetSession returns the current session
// @Summary     Current session
// @Description Get the role and user the current session acts for, with the stored display name
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} session.Session "Current session"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	sess, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Name and role come from the store; the token may predate a rename.
	user, err := h.userService.GetUserByID(c.Request.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			respondWithError(c, apperrors.ErrUnauthorized)
			return
		}
		respondWithError(c, err)
		return
	}
	sess.Role = user.Role
	sess.Name = user.Name

	c.JSON(http.StatusOK, gin.H{"session": sess})
}
