package sessionstore

import (
	"context"
	"crypto/rsa"
	"fmt"
	"sync"
	"time"

	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/docseal/docseal/internal/pkg/logger"
	"github.com/google/uuid"
)

// inMemorySessionStore keeps session key pairs in process memory only. Keys
// never touch durable storage; deleting a session discards them.
type inMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessions.Session
	logger   logger.Logger
}

// NewInMemorySessionStore creates a new in-memory SessionStore implementation.
func NewInMemorySessionStore(logger logger.Logger) (sessions.SessionStore, error) {
	return &inMemorySessionStore{
		sessions: make(map[string]*sessions.Session),
		logger:   logger,
	}, nil
}

func (s *inMemorySessionStore) Create(_ context.Context) (*sessions.Session, error) {
	session := &sessions.Session{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	copied := s.snapshot(session)
	s.mu.Unlock()

	s.logger.Info("Created session with id ", session.ID)
	return copied, nil
}

func (s *inMemorySessionStore) Get(_ context.Context, sessionID string) (*sessions.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session with ID %s not found", sessionID)
	}
	return s.snapshot(session), nil
}

func (s *inMemorySessionStore) SetKeyPair(_ context.Context, sessionID string, privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session with ID %s not found", sessionID)
	}

	if privateKey != nil {
		session.PrivateKey = privateKey
	}
	if publicKey != nil {
		session.PublicKey = publicKey
	}

	s.logger.Info("Updated key pair for session with id ", sessionID)
	return nil
}

func (s *inMemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("session with ID %s not found", sessionID)
	}

	delete(s.sessions, sessionID)
	s.logger.Info("Deleted session with id ", sessionID)
	return nil
}

// snapshot returns a copy so callers cannot mutate stored state directly.
// The caller must hold mu.
func (s *inMemorySessionStore) snapshot(session *sessions.Session) *sessions.Session {
	copied := *session
	return &copied
}
