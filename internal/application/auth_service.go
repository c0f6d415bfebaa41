package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/uptask/uptask-server/internal/domain/entity"
	repo "github.com/uptask/uptask-server/internal/domain/repository"
	"github.com/uptask/uptask-server/pkg/helpers"
)

// AuthService implements registration and authentication against the
// credential store.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// Register creates a new user. The password is hashed with a random
// per-call salt; the hash never leaves the service layer.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*entity.User, error) {
	_, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, Name: name, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		// a concurrent registration can win the race after the lookup above
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return u, nil
}

// Login verifies email/password and issues a fresh token bound to the
// user's identity claims.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", time.Time{}, ErrUnknownUser
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrBadCredential
	}

	token, exp, err := s.JWT.Issue(u.ID, u.Email, u.Name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
