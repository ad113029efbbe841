package audit

import "context"

// RecordRepository defines the interface for audit record persistence.
type RecordRepository interface {
	Create(ctx context.Context, record *Record) error
	List(ctx context.Context, query *RecordQuery) ([]*Record, error)
	GetByID(ctx context.Context, recordID string) (*Record, error)
	DeleteByID(ctx context.Context, recordID string) error
}

// TrailService defines read access to the audit trail for the API layer.
type TrailService interface {
	// List retrieves audit records considering a query filter when set.
	List(ctx context.Context, query *RecordQuery) ([]*Record, error)

	// GetByID retrieves a single audit record by its unique ID.
	GetByID(ctx context.Context, recordID string) (*Record, error)
}
