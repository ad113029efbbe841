//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Open(ctx context.Context) (*sessions.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) Close(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockKeyPairService is a mock implementation of KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context, sessionID string, keySize int) (*signing.KeyPairInfo, error) {
	args := m.Called(ctx, sessionID, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signing.KeyPairInfo), args.Error(1)
}

func (m *MockKeyPairService) Export(ctx context.Context, sessionID, keyType string) ([]byte, error) {
	args := m.Called(ctx, sessionID, keyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyPairService) Import(ctx context.Context, sessionID, keyType string, pemBytes []byte) (*signing.KeyPairInfo, error) {
	args := m.Called(ctx, sessionID, keyType, pemBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signing.KeyPairInfo), args.Error(1)
}

// MockDocumentSignService is a mock implementation of DocumentSignService
type MockDocumentSignService struct {
	mock.Mock
}

func (m *MockDocumentSignService) Sign(ctx context.Context, sessionID, documentName string, document []byte) (*signing.SignResult, error) {
	args := m.Called(ctx, sessionID, documentName, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signing.SignResult), args.Error(1)
}

// MockDocumentVerifyService is a mock implementation of DocumentVerifyService
type MockDocumentVerifyService struct {
	mock.Mock
}

func (m *MockDocumentVerifyService) Verify(ctx context.Context, sessionID, documentName string, document []byte, signatureB64 string) (*signing.VerifyResult, error) {
	args := m.Called(ctx, sessionID, documentName, document, signatureB64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signing.VerifyResult), args.Error(1)
}

// MockTrailService is a mock implementation of TrailService
type MockTrailService struct {
	mock.Mock
}

func (m *MockTrailService) List(ctx context.Context, query *audit.RecordQuery) ([]*audit.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Record), args.Error(1)
}

func (m *MockTrailService) GetByID(ctx context.Context, recordID string) (*audit.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audit.Record), args.Error(1)
}
