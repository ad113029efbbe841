//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository is a mock implementation of audit.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, record *audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) List(ctx context.Context, query *audit.RecordQuery) ([]*audit.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Record), args.Error(1)
}

func (m *MockRecordRepository) GetByID(ctx context.Context, recordID string) (*audit.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audit.Record), args.Error(1)
}

func (m *MockRecordRepository) DeleteByID(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}
