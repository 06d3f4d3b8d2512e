package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"emporia-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register validates in order, short-circuiting on the first failure, and
// performs a single atomic insert with the default role.
func (s *service) Register(ctx context.Context, email, password string) (*User, error) {
	log := logger.FromCtx(ctx)

	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, email, hashed, string(RoleUser))
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return u, nil
}

// Login keeps the missing-user and wrong-password outcomes indistinguishable
// to the caller.
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	log := logger.FromCtx(ctx)

	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if !CheckPasswordHash(password, u.Password) {
		return nil, ErrInvalidCredentials
	}

	if !u.Role.Valid() {
		log.Error("user has unrecognized role",
			zap.String("user_id", fmt.Sprint(u.ID)),
			zap.String("role", string(u.Role)),
		)
		return nil, ErrUnknownRole
	}

	return u, nil
}
