package signing

import "time"

// KeyPairInfo describes a key pair attached to a session. It never carries key
// material; keys stay in the session store and leave only via Export.
type KeyPairInfo struct {
	SessionID       string
	Algorithm       string
	KeySize         int
	HasPrivateKey   bool
	HasPublicKey    bool
	DateTimeCreated time.Time
}

// SignResult is the outcome of signing a document.
type SignResult struct {
	DocumentName   string
	DocumentDigest string // hex-encoded SHA-256 of the document
	SignatureB64   string
	SignedAt       time.Time
}

// VerifyResult is the outcome of verifying a document signature.
type VerifyResult struct {
	DocumentName   string
	DocumentDigest string
	Valid          bool
	VerifiedAt     time.Time
}
