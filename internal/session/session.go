// Package session turns a shared role password into an explicit Session
// value. Persisting the session (token, cookie) is left to the caller.
package session

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
)

// Session identifies who is acting: the role, the user that role maps to,
// and when the session stops being valid.
type Session struct {
	UserID    string      `json:"user_id"`
	Role      models.Role `json:"role"`
	Name      string      `json:"name"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Gate maps a submitted password to one of the two roles.
type Gate struct {
	hashes map[models.Role][]byte
}

// NewGate builds a gate from per-role secrets. A secret that already is a
// bcrypt hash is used as-is; anything else is hashed with cost. An empty
// secret disables that role.
func NewGate(secrets map[models.Role]string, cost int) (*Gate, error) {
	g := &Gate{hashes: make(map[models.Role][]byte, len(secrets))}
	for role, secret := range secrets {
		if !role.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidRole, "unknown role "+string(role))
		}
		if secret == "" {
			continue
		}
		if isBcryptHash(secret) {
			g.hashes[role] = []byte(secret)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
		if err != nil {
			return nil, err
		}
		g.hashes[role] = hash
	}
	return g, nil
}

// Authenticate returns the role whose secret matches password.
func (g *Gate) Authenticate(password string) (models.Role, error) {
	if password == "" {
		return "", apperrors.ErrInvalidCredentials
	}
	for _, role := range models.Roles {
		hash, ok := g.hashes[role]
		if !ok {
			continue
		}
		if bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil {
			return role, nil
		}
	}
	return "", apperrors.ErrInvalidCredentials
}

// Enabled lists the roles that can log in.
func (g *Gate) Enabled() []models.Role {
	roles := make([]models.Role, 0, len(g.hashes))
	for _, role := range models.Roles {
		if _, ok := g.hashes[role]; ok {
			roles = append(roles, role)
		}
	}
	return roles
}

func isBcryptHash(s string) bool {
	if _, err := bcrypt.Cost([]byte(s)); err != nil {
		return false
	}
	return strings.HasPrefix(s, "$2")
}
