package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/pkg/logger"
)

// PEM block types for RSA keys
const (
	pemTypePrivateKey = "RSA PRIVATE KEY"
	pemTypePublicKey  = "PUBLIC KEY"
)

// rsaSignatureService struct that implements the SignatureService interface
type rsaSignatureService struct {
	logger logger.Logger
}

// NewRSASignatureService creates and returns a new instance of rsaSignatureService
func NewRSASignatureService(logger logger.Logger) (signing.SignatureService, error) {
	return &rsaSignatureService{
		logger: logger,
	}, nil
}

// GenerateKeyPair generates a fresh RSA key pair with the specified bit size.
// Supported sizes: 2048 (default), 3072, 4096 bits.
func (s *rsaSignatureService) GenerateKeyPair(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	switch keySize {
	case 2048, 3072, 4096:
	default:
		return nil, nil, fmt.Errorf("%w: unsupported RSA key size %d", signing.ErrInvalidKey, keySize)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", signing.ErrEntropyFailure, err)
	}
	publicKey := &privateKey.PublicKey
	s.logger.Info("Generated RSA key pair with size ", keySize)
	return privateKey, publicKey, nil
}

// Sign computes the SHA-256 digest of document and signs it with PKCS#1 v1.5.
func (s *rsaSignatureService) Sign(document []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", signing.ErrInvalidKey)
	}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", signing.ErrInvalidKey, err)
	}

	hashed := sha256.Sum256(document)

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign document: %w", err)
	}

	s.logger.Info("RSA signing succeeded")
	return signature, nil
}

// Verify recomputes the document digest and checks the signature against the
// public key. A mismatched signature is a normal false result, not an error.
func (s *rsaSignatureService) Verify(document, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, fmt.Errorf("%w: public key cannot be nil", signing.ErrInvalidKey)
	}
	if len(signature) == 0 {
		return false, fmt.Errorf("%w: signature is empty", signing.ErrInvalidSignatureFormat)
	}
	// A PKCS#1 v1.5 signature is exactly as long as the key modulus.
	if len(signature) != publicKey.Size() {
		return false, fmt.Errorf("%w: signature length %d does not match key size %d",
			signing.ErrInvalidSignatureFormat, len(signature), publicKey.Size())
	}

	hashed := sha256.Sum256(document)

	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			s.logger.Info("RSA signature mismatch")
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", signing.ErrInvalidSignatureFormat, err)
	}

	s.logger.Info("RSA signature verified successfully")
	return true, nil
}

// ExportPrivateKey encodes the RSA private key as a PEM block (PKCS#1 format).
func (s *rsaSignatureService) ExportPrivateKey(privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", signing.ErrInvalidKey)
	}

	privKeyBytes := x509.MarshalPKCS1PrivateKey(privateKey)
	privKeyPem := &pem.Block{
		Type:  pemTypePrivateKey,
		Bytes: privKeyBytes,
	}

	return pem.EncodeToMemory(privKeyPem), nil
}

// ExportPublicKey encodes the RSA public key as a PEM block (PKIX format).
func (s *rsaSignatureService) ExportPublicKey(publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", signing.ErrInvalidKey)
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", signing.ErrInvalidKey, err)
	}

	pubKeyPem := &pem.Block{
		Type:  pemTypePublicKey,
		Bytes: pubKeyBytes,
	}

	return pem.EncodeToMemory(pubKeyPem), nil
}

// ImportPrivateKey decodes a PEM-encoded RSA private key (PKCS#1 or PKCS#8 format).
func (s *rsaSignatureService) ImportPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", signing.ErrInvalidKeyFormat)
	}

	// First try to parse as PKCS#1 format
	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// If PKCS#1 parsing fails, try parsing as PKCS#8 format
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: not a PKCS#1 or PKCS#8 private key: %v", signing.ErrInvalidKeyFormat, err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", signing.ErrInvalidKeyFormat)
	}

	return privateKey, nil
}

// ImportPublicKey decodes a PEM-encoded RSA public key (PKCS#1 or PKIX format).
func (s *rsaSignatureService) ImportPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", signing.ErrInvalidKeyFormat)
	}

	// Try to parse as PKCS#1 format first
	publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err == nil {
		return publicKey, nil
	}

	// If PKCS#1 parsing fails, try parsing as PKIX format
	pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: not a PKCS#1 or PKIX public key: %v", signing.ErrInvalidKeyFormat, err)
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", signing.ErrInvalidKeyFormat)
	}

	return publicKey, nil
}
