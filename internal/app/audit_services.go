package app

import (
	"context"
	"fmt"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/pkg/logger"
)

// auditTrailService implements the TrailService interface for reading the audit trail.
type auditTrailService struct {
	auditRepo audit.RecordRepository
	logger    logger.Logger
}

// NewAuditTrailService creates a new auditTrailService instance
func NewAuditTrailService(auditRepo audit.RecordRepository, logger logger.Logger) (audit.TrailService, error) {
	return &auditTrailService{
		auditRepo: auditRepo,
		logger:    logger,
	}, nil
}

// List retrieves audit records based on a query.
func (s *auditTrailService) List(ctx context.Context, query *audit.RecordQuery) ([]*audit.Record, error) {
	records, err := s.auditRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return records, nil
}

// GetByID retrieves a single audit record by its unique ID.
func (s *auditTrailService) GetByID(ctx context.Context, recordID string) (*audit.Record, error) {
	record, err := s.auditRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return record, nil
}
