package sessions

import (
	"crypto/rsa"
	"time"
)

// Session is the transient state of one signing session. Key fields may be nil
// until a pair is generated or imported.
type Session struct {
	ID              string
	PrivateKey      *rsa.PrivateKey
	PublicKey       *rsa.PublicKey
	DateTimeCreated time.Time
}

// HasPrivateKey reports whether the session can sign documents.
func (s *Session) HasPrivateKey() bool {
	return s.PrivateKey != nil
}

// HasPublicKey reports whether the session can verify signatures.
func (s *Session) HasPublicKey() bool {
	return s.PublicKey != nil
}
