package models

import (
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
)

// AuditRecordModel is the GORM database model for audit records (infrastructure concern)
type AuditRecordModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	SessionID       string    `gorm:"not null;index;type:uuid"`
	Operation       string    `gorm:"not null;index;type:varchar(20)"`
	DocumentName    string    `gorm:"type:varchar(255)"`
	DocumentDigest  string    `gorm:"type:char(64)"`
	Algorithm       string    `gorm:"type:varchar(20)"`
	KeySize         int       `gorm:"type:integer"`
	Result          bool      `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditRecordModel) TableName() string {
	return "audit_records"
}

// ToDomain converts GORM model to domain entity
func (m *AuditRecordModel) ToDomain() *audit.Record {
	return &audit.Record{
		ID:              m.ID,
		SessionID:       m.SessionID,
		Operation:       m.Operation,
		DocumentName:    m.DocumentName,
		DocumentDigest:  m.DocumentDigest,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		Result:          m.Result,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditRecordModel) FromDomain(r *audit.Record) {
	m.ID = r.ID
	m.SessionID = r.SessionID
	m.Operation = r.Operation
	m.DocumentName = r.DocumentName
	m.DocumentDigest = r.DocumentDigest
	m.Algorithm = r.Algorithm
	m.KeySize = r.KeySize
	m.Result = r.Result
	m.DateTimeCreated = r.DateTimeCreated
}
