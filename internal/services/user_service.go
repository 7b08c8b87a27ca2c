package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
)

// userService handles the two participant records.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// EnsureUsers creates any missing participant and renames existing ones
// whose configured display name changed. It is safe to call on every start.
func (s *userService) EnsureUsers(ctx context.Context, names map[models.Role]string) ([]models.User, error) {
	for _, role := range models.Roles {
		name := strings.TrimSpace(names[role])
		if name == "" {
			name = string(role)
		}

		var user models.User
		err := s.db.WithContext(ctx).Where("role = ?", role).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{Role: role, Name: name}
			if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case err != nil:
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		case user.Name != name:
			if err := s.db.WithContext(ctx).Model(&user).Update("name", name).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
	}

	return s.ListUsers(ctx)
}

// ListUsers returns the participants in role order.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("role ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// GetUserByRole retrieves the user a role maps to
func (s *userService) GetUserByRole(ctx context.Context, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}
	var user models.User
	if err := s.db.WithContext(ctx).Where("role = ?", role).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
