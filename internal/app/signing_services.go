package app

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/pkg/logger"
	"github.com/google/uuid"
)

// keyPairService implements the KeyPairService interface for session key management
type keyPairService struct {
	sessionStore     sessions.SessionStore
	signatureService signing.SignatureService
	auditRepo        audit.RecordRepository
	logger           logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(
	sessionStore sessions.SessionStore,
	signatureService signing.SignatureService,
	auditRepo audit.RecordRepository,
	logger logger.Logger,
) (signing.KeyPairService, error) {
	return &keyPairService{
		sessionStore:     sessionStore,
		signatureService: signatureService,
		auditRepo:        auditRepo,
		logger:           logger,
	}, nil
}

// Generate creates a fresh RSA key pair and attaches it to the session.
func (s *keyPairService) Generate(ctx context.Context, sessionID string, keySize int) (*signing.KeyPairInfo, error) {
	if keySize == 0 {
		keySize = signing.DefaultKeySize
	}

	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	privateKey, publicKey, err := s.signatureService.GenerateKeyPair(keySize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.sessionStore.SetKeyPair(ctx, session.ID, privateKey, publicKey); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.recordOperation(ctx, session.ID, signing.OperationGenerate, "", "", keySize, true)

	return &signing.KeyPairInfo{
		SessionID:       session.ID,
		Algorithm:       signing.AlgorithmRSA,
		KeySize:         keySize,
		HasPrivateKey:   true,
		HasPublicKey:    true,
		DateTimeCreated: time.Now().UTC(),
	}, nil
}

// Export returns the PEM encoding of the session's key of the given type.
func (s *keyPairService) Export(ctx context.Context, sessionID, keyType string) ([]byte, error) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var pemBytes []byte
	switch keyType {
	case signing.KeyTypePrivate:
		if !session.HasPrivateKey() {
			return nil, fmt.Errorf("session %s holds no private key", sessionID)
		}
		pemBytes, err = s.signatureService.ExportPrivateKey(session.PrivateKey)
	case signing.KeyTypePublic:
		if !session.HasPublicKey() {
			return nil, fmt.Errorf("session %s holds no public key", sessionID)
		}
		pemBytes, err = s.signatureService.ExportPublicKey(session.PublicKey)
	default:
		return nil, fmt.Errorf("unsupported key type: %s", keyType)
	}

	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.recordOperation(ctx, session.ID, signing.OperationExport, "", "", 0, true)
	return pemBytes, nil
}

// Import replaces the session's key of the given type with one decoded from PEM bytes.
func (s *keyPairService) Import(ctx context.Context, sessionID, keyType string, pemBytes []byte) (*signing.KeyPairInfo, error) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	switch keyType {
	case signing.KeyTypePrivate:
		privateKey, err := s.signatureService.ImportPrivateKey(pemBytes)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		// Importing a private key also yields its public counterpart
		if err := s.sessionStore.SetKeyPair(ctx, session.ID, privateKey, &privateKey.PublicKey); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	case signing.KeyTypePublic:
		publicKey, err := s.signatureService.ImportPublicKey(pemBytes)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if err := s.sessionStore.SetKeyPair(ctx, session.ID, nil, publicKey); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported key type: %s", keyType)
	}

	s.recordOperation(ctx, session.ID, signing.OperationImport, "", "", 0, true)

	updated, err := s.sessionStore.Get(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &signing.KeyPairInfo{
		SessionID:       updated.ID,
		Algorithm:       signing.AlgorithmRSA,
		KeySize:         rsaKeySize(updated),
		HasPrivateKey:   updated.HasPrivateKey(),
		HasPublicKey:    updated.HasPublicKey(),
		DateTimeCreated: time.Now().UTC(),
	}, nil
}

// recordOperation appends an audit record. Audit writes are best effort; a
// failed write is logged but never fails the signing operation itself.
func (s *keyPairService) recordOperation(ctx context.Context, sessionID, operation, documentName, documentDigest string, keySize int, result bool) {
	record := &audit.Record{
		ID:              uuid.New().String(),
		SessionID:       sessionID,
		Operation:       operation,
		DocumentName:    documentName,
		DocumentDigest:  documentDigest,
		Algorithm:       signing.AlgorithmRSA,
		KeySize:         keySize,
		Result:          result,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to write audit record: ", err)
	}
}

// rsaKeySize reports the modulus size of whichever key the session holds.
func rsaKeySize(session *sessions.Session) int {
	switch {
	case session.HasPrivateKey():
		return session.PrivateKey.N.BitLen()
	case session.HasPublicKey():
		return session.PublicKey.N.BitLen()
	default:
		return 0
	}
}

// documentSignService implements the DocumentSignService interface
type documentSignService struct {
	sessionStore     sessions.SessionStore
	signatureService signing.SignatureService
	auditRepo        audit.RecordRepository
	logger           logger.Logger
}

// NewDocumentSignService creates a new documentSignService instance
func NewDocumentSignService(
	sessionStore sessions.SessionStore,
	signatureService signing.SignatureService,
	auditRepo audit.RecordRepository,
	logger logger.Logger,
) (signing.DocumentSignService, error) {
	return &documentSignService{
		sessionStore:     sessionStore,
		signatureService: signatureService,
		auditRepo:        auditRepo,
		logger:           logger,
	}, nil
}

// Sign signs the document with the session's private key and returns the
// Base64-encoded signature.
func (s *documentSignService) Sign(ctx context.Context, sessionID, documentName string, document []byte) (*signing.SignResult, error) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !session.HasPrivateKey() {
		return nil, fmt.Errorf("session %s holds no private key: generate or import one first", sessionID)
	}

	signature, err := s.signatureService.Sign(document, session.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	digest := sha256.Sum256(document)
	digestHex := hex.EncodeToString(digest[:])

	s.recordAudit(ctx, session.ID, signing.OperationSign, documentName, digestHex, true)

	return &signing.SignResult{
		DocumentName:   documentName,
		DocumentDigest: digestHex,
		SignatureB64:   base64.StdEncoding.EncodeToString(signature),
		SignedAt:       time.Now().UTC(),
	}, nil
}

func (s *documentSignService) recordAudit(ctx context.Context, sessionID, operation, documentName, documentDigest string, result bool) {
	record := &audit.Record{
		ID:              uuid.New().String(),
		SessionID:       sessionID,
		Operation:       operation,
		DocumentName:    documentName,
		DocumentDigest:  documentDigest,
		Algorithm:       signing.AlgorithmRSA,
		Result:          result,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to write audit record: ", err)
	}
}

// documentVerifyService implements the DocumentVerifyService interface
type documentVerifyService struct {
	sessionStore     sessions.SessionStore
	signatureService signing.SignatureService
	auditRepo        audit.RecordRepository
	logger           logger.Logger
}

// NewDocumentVerifyService creates a new documentVerifyService instance
func NewDocumentVerifyService(
	sessionStore sessions.SessionStore,
	signatureService signing.SignatureService,
	auditRepo audit.RecordRepository,
	logger logger.Logger,
) (signing.DocumentVerifyService, error) {
	return &documentVerifyService{
		sessionStore:     sessionStore,
		signatureService: signatureService,
		auditRepo:        auditRepo,
		logger:           logger,
	}, nil
}

// Verify decodes the Base64 signature and checks it against the document using
// the session's public key. A mismatch yields Valid=false, not an error.
func (s *documentVerifyService) Verify(ctx context.Context, sessionID, documentName string, document []byte, signatureB64 string) (*signing.VerifyResult, error) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !session.HasPublicKey() {
		return nil, fmt.Errorf("session %s holds no public key: generate or import one first", sessionID)
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return nil, fmt.Errorf("%w: signature is not valid Base64: %v", signing.ErrInvalidSignatureFormat, err)
	}

	valid, err := s.signatureService.Verify(document, signature, session.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	digest := sha256.Sum256(document)
	digestHex := hex.EncodeToString(digest[:])

	s.recordAudit(ctx, session.ID, signing.OperationVerify, documentName, digestHex, valid)

	return &signing.VerifyResult{
		DocumentName:   documentName,
		DocumentDigest: digestHex,
		Valid:          valid,
		VerifiedAt:     time.Now().UTC(),
	}, nil
}

func (s *documentVerifyService) recordAudit(ctx context.Context, sessionID, operation, documentName, documentDigest string, result bool) {
	record := &audit.Record{
		ID:              uuid.New().String(),
		SessionID:       sessionID,
		Operation:       operation,
		DocumentName:    documentName,
		DocumentDigest:  documentDigest,
		Algorithm:       signing.AlgorithmRSA,
		Result:          result,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to write audit record: ", err)
	}
}
