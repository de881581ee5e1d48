package auth

import (
	"context"
	"errors"

	"github.com/chronos-atelier/chronos-backend/internal/users"
	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
	"github.com/chronos-atelier/chronos-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateEmail changes the account email after verifying the current password.
func (s *service) UpdateEmail(ctx context.Context, userID uuid.UUID, req UpdateEmailRequest) (*users.UserDTO, error) {
	user, err := s.reauthenticate(ctx, userID, req.Password)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.NewEmail)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "new email is required")
	}
	if email == user.Email {
		return users.FromModel(user), nil
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}

	if err := s.users.UpdateEmail(ctx, userID, email); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update email")
	}
	user.Email = email
	return users.FromModel(user), nil
}

// UpdatePassword rotates the account credential after verifying the current one.
func (s *service) UpdatePassword(ctx context.Context, userID uuid.UUID, req UpdatePasswordRequest) error {
	if _, err := s.reauthenticate(ctx, userID, req.CurrentPassword); err != nil {
		return err
	}

	hash, err := security.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}
	return nil
}

func (s *service) reauthenticate(ctx context.Context, userID uuid.UUID, password string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}
