package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/session"
)

const (
	// SessionCookie is the cookie the session token is stored in for browsers.
	SessionCookie = "twofold_session"

	sessionKey  = "session"
	tokenIssuer = "twofold-api"
)

// SessionClaims represents the claims in the session JWT
type SessionClaims struct {
	UserID string      `json:"user_id"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs sess into an HS256 JWT that expires at
// sess.ExpiresAt.
func GenerateSessionToken(sess session.Session, secret string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: sess.UserID,
		Role:   sess.Role,
		Name:   sess.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   sess.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session JWT and returns the session it carries.
func ParseSessionToken(tokenString, secret string) (session.Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return session.Session{}, apperrors.ErrSessionExpired
		}
		return session.Session{}, apperrors.Wrap(apperrors.ErrUnauthorized, err)
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return session.Session{}, apperrors.ErrUnauthorized
	}

	sess := session.Session{UserID: claims.UserID, Role: claims.Role, Name: claims.Name}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// tokenFromRequest reads the bearer token, falling back to the session cookie.
func tokenFromRequest(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", apperrors.ErrUnauthorized
}

// AuthMiddleware verifies the session token and stores the session in the context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		sess, err := ParseSessionToken(tokenString, secret)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SetSession stores sess in the context. Handlers and tests use it in place
// of AuthMiddleware.
func SetSession(c *gin.Context, sess session.Session) {
	c.Set(sessionKey, sess)
}

// GetSession returns the session AuthMiddleware stored in the context.
func GetSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
