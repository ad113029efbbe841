package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// SessionResponse describes an open signing session
type SessionResponse struct {
	ID              string    `json:"id"`
	HasPrivateKey   bool      `json:"has_private_key"`
	HasPublicKey    bool      `json:"has_public_key"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// GenerateKeyRequest is the body for generating a session key pair
type GenerateKeyRequest struct {
	KeySize int `json:"key_size" validate:"omitempty,rsakeysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("rsakeysize", validators.RSAKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register validation: %w", err)
	}

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// KeyPairInfoResponse describes the key pair attached to a session.
// It never carries key material.
type KeyPairInfoResponse struct {
	SessionID       string    `json:"session_id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         int       `json:"key_size"`
	HasPrivateKey   bool      `json:"has_private_key"`
	HasPublicKey    bool      `json:"has_public_key"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeyPairInfoResponse maps domain key pair info to the API response
func NewKeyPairInfoResponse(info *signing.KeyPairInfo) KeyPairInfoResponse {
	return KeyPairInfoResponse{
		SessionID:       info.SessionID,
		Algorithm:       info.Algorithm,
		KeySize:         info.KeySize,
		HasPrivateKey:   info.HasPrivateKey,
		HasPublicKey:    info.HasPublicKey,
		DateTimeCreated: info.DateTimeCreated,
	}
}

// SignResponse carries the Base64 signature of an uploaded document
type SignResponse struct {
	DocumentName   string    `json:"document_name"`
	DocumentDigest string    `json:"document_digest"`
	Signature      string    `json:"signature"`
	SignedAt       time.Time `json:"signed_at"`
}

// VerifyResponse carries the verification outcome for an uploaded document
type VerifyResponse struct {
	DocumentName   string    `json:"document_name"`
	DocumentDigest string    `json:"document_digest"`
	Valid          bool      `json:"valid"`
	VerifiedAt     time.Time `json:"verified_at"`
}

// AuditRecordResponse describes one audit trail entry
type AuditRecordResponse struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	Operation       string    `json:"operation"`
	DocumentName    string    `json:"document_name,omitempty"`
	DocumentDigest  string    `json:"document_digest,omitempty"`
	Algorithm       string    `json:"algorithm"`
	KeySize         int       `json:"key_size,omitempty"`
	Result          bool      `json:"result"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewAuditRecordResponse maps a domain audit record to the API response
func NewAuditRecordResponse(record *audit.Record) AuditRecordResponse {
	return AuditRecordResponse{
		ID:              record.ID,
		SessionID:       record.SessionID,
		Operation:       record.Operation,
		DocumentName:    record.DocumentName,
		DocumentDigest:  record.DocumentDigest,
		Algorithm:       record.Algorithm,
		KeySize:         record.KeySize,
		Result:          record.Result,
		DateTimeCreated: record.DateTimeCreated,
	}
}
