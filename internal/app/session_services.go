package app

import (
	"context"
	"fmt"

	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/docseal/docseal/internal/pkg/logger"
)

// sessionService implements the SessionService interface over a SessionStore.
type sessionService struct {
	sessionStore sessions.SessionStore
	logger       logger.Logger
}

// NewSessionService creates a new sessionService instance
func NewSessionService(sessionStore sessions.SessionStore, logger logger.Logger) (sessions.SessionService, error) {
	return &sessionService{
		sessionStore: sessionStore,
		logger:       logger,
	}, nil
}

// Open creates a new signing session.
func (s *sessionService) Open(ctx context.Context) (*sessions.Session, error) {
	session, err := s.sessionStore.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return session, nil
}

// GetByID retrieves an existing session.
func (s *sessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return session, nil
}

// Close discards the session and any keys it holds.
func (s *sessionService) Close(ctx context.Context, sessionID string) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	return nil
}
