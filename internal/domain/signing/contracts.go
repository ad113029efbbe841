package signing

import (
	"context"
	"crypto/rsa"
)

// SignatureService handles RSA document signing primitives. Every method is a
// pure function of its inputs plus the secure random source (key generation
// only); the service holds no shared mutable state.
type SignatureService interface {
	// GenerateKeyPair generates a fresh RSA key pair with the specified bit size.
	// Supported sizes: 2048 (default), 3072, 4096 bits.
	// Fails with ErrEntropyFailure if the secure random source is exhausted.
	GenerateKeyPair(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Sign computes the SHA-256 digest of document and signs it with the
	// PKCS#1 v1.5 scheme. Fails with ErrInvalidKey on a nil or malformed key.
	Sign(document []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify recomputes the document digest and checks signature against
	// publicKey. A mismatch returns (false, nil); only structurally malformed
	// inputs produce an error (ErrInvalidKey, ErrInvalidSignatureFormat).
	Verify(document, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// ExportPrivateKey encodes the private key as a PEM block (PKCS#1 format).
	ExportPrivateKey(privateKey *rsa.PrivateKey) ([]byte, error)

	// ExportPublicKey encodes the public key as a PEM block (PKIX format).
	ExportPublicKey(publicKey *rsa.PublicKey) ([]byte, error)

	// ImportPrivateKey decodes a PEM-encoded RSA private key (PKCS#1 or PKCS#8).
	// Fails with ErrInvalidKeyFormat on malformed input.
	ImportPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error)

	// ImportPublicKey decodes a PEM-encoded RSA public key (PKCS#1 or PKIX).
	// Fails with ErrInvalidKeyFormat on malformed input.
	ImportPublicKey(pemBytes []byte) (*rsa.PublicKey, error)
}

// KeyPairService defines session-scoped key management operations.
type KeyPairService interface {
	// Generate creates a fresh key pair and attaches it to the session.
	// It returns metadata describing the generated pair.
	Generate(ctx context.Context, sessionID string, keySize int) (*KeyPairInfo, error)

	// Export returns the PEM encoding of the session's key of the given type
	// (KeyTypePrivate or KeyTypePublic).
	Export(ctx context.Context, sessionID, keyType string) ([]byte, error)

	// Import replaces the session's key of the given type with one decoded
	// from PEM bytes.
	Import(ctx context.Context, sessionID, keyType string, pemBytes []byte) (*KeyPairInfo, error)
}

// DocumentSignService signs uploaded documents with the session's private key.
type DocumentSignService interface {
	// Sign signs the document and returns the Base64-encoded signature as
	// presented at the UI boundary.
	Sign(ctx context.Context, sessionID, documentName string, document []byte) (*SignResult, error)
}

// DocumentVerifyService verifies uploaded documents against the session's public key.
type DocumentVerifyService interface {
	// Verify decodes the Base64 signature and checks it against the document.
	// A mismatch yields a false result, not an error.
	Verify(ctx context.Context, sessionID, documentName string, document []byte, signatureB64 string) (*VerifyResult, error)
}
