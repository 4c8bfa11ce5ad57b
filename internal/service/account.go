package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/shelf/internal/domain"
)

// AccountService orchestrates registration and login
type AccountService struct {
	repo   domain.AccountRepository
	logger *slog.Logger
	recorder
}

// NewAccountService creates a new account service
func NewAccountService(repo domain.AccountRepository, journal domain.Journal, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		repo:     repo,
		logger:   logger,
		recorder: newRecorder(journal, logger),
	}
}

// Register creates a user and returns the server's reply
func (s *AccountService) Register(ctx context.Context, creds domain.Credentials) (string, error) {
	reply, err := s.repo.Register(ctx, creds)
	s.record(domain.OpRegister, err)
	if err != nil {
		s.logger.Info("registration failed", "op", domain.OpRegister, "error", err)
		return "", err
	}
	s.logger.Info("registered user", "op", domain.OpRegister)
	return reply, nil
}

// Login authenticates and returns the session token
func (s *AccountService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	token, err := s.repo.Login(ctx, creds)
	s.record(domain.OpLogin, err)
	if err != nil {
		s.logger.Info("login failed", "op", domain.OpLogin, "error", err)
		return "", err
	}
	s.logger.Info("logged in", "op", domain.OpLogin)
	return token, nil
}
