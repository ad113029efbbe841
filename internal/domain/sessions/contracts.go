package sessions

import (
	"context"
	"crypto/rsa"
)

// SessionStore is the interface for transient session state. Implementations
// must be safe for concurrent use; keys are never written to durable storage.
type SessionStore interface {
	// Create opens a new session and returns it.
	Create(ctx context.Context) (*Session, error)

	// Get returns the session with the given ID or an error if it does not exist.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// SetKeyPair attaches a key pair to the session. Either key may be nil to
	// leave the existing key of that type untouched.
	SetKeyPair(ctx context.Context, sessionID string, privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) error

	// Delete discards the session and any keys it holds.
	Delete(ctx context.Context, sessionID string) error
}

// SessionService defines session lifecycle operations exposed to the API layer.
type SessionService interface {
	// Open creates a new signing session.
	Open(ctx context.Context) (*Session, error)

	// GetByID retrieves an existing session.
	GetByID(ctx context.Context, sessionID string) (*Session, error)

	// Close discards the session.
	Close(ctx context.Context, sessionID string) error
}
