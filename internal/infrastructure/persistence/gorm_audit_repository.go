package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/infrastructure/persistence/models"
	"github.com/docseal/docseal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditRepository creates a new GORM-based RecordRepository implementation
func NewGormAuditRepository(db *gorm.DB, logger logger.Logger) (audit.RecordRepository, error) {
	return &gormAuditRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditRepository) Create(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuditRecordModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	r.logger.Info("Created audit record with id ", record.ID)
	return nil
}

func (r *gormAuditRepository) List(ctx context.Context, query *audit.RecordQuery) ([]*audit.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AuditRecordModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AuditRecordModel{})

	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}
	if query.SessionID != "" {
		dbQuery = dbQuery.Where("session_id = ?", query.SessionID)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audit records: %w", err)
	}

	domainList := make([]*audit.Record, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAuditRepository) GetByID(ctx context.Context, recordID string) (*audit.Record, error) {
	var model models.AuditRecordModel
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("audit record with ID %s not found", recordID)
		}
		return nil, fmt.Errorf("failed to fetch audit record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAuditRepository) DeleteByID(ctx context.Context, recordID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).Delete(&models.AuditRecordModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete audit record: %w", err)
	}

	r.logger.Info("Deleted audit record with id ", recordID)
	return nil
}
