//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditSqliteRepository_Create(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	sessionID := uuid.NewString()
	record := CreateTestRecord(t, sessionID, signing.OperationSign, true)

	err := tc.AuditRepo.Create(context.Background(), record)
	require.NoError(t, err)

	var created audit.Record
	err = tc.DB.Table("audit_records").First(&created, "id = ?", record.ID).Error
	require.NoError(t, err)
	assert.Equal(t, record.SessionID, created.SessionID)
	assert.Equal(t, signing.OperationSign, created.Operation)
	assert.True(t, created.Result)
}

func TestAuditSqliteRepository_CreateInvalidRecord(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestRecord(t, uuid.NewString(), signing.OperationSign, true)
	record.Operation = "unknown-op"

	err := tc.AuditRepo.Create(context.Background(), record)
	assert.Error(t, err)
}

func TestAuditSqliteRepository_GetByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestRecord(t, uuid.NewString(), signing.OperationVerify, false)
	require.NoError(t, tc.AuditRepo.Create(context.Background(), record))

	fetched, err := tc.AuditRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.False(t, fetched.Result)

	_, err = tc.AuditRepo.GetByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
}

func TestAuditSqliteRepository_List(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	sessionID := uuid.NewString()
	require.NoError(t, tc.AuditRepo.Create(ctx, CreateTestRecord(t, sessionID, signing.OperationGenerate, true)))
	require.NoError(t, tc.AuditRepo.Create(ctx, CreateTestRecord(t, sessionID, signing.OperationSign, true)))
	require.NoError(t, tc.AuditRepo.Create(ctx, CreateTestRecord(t, uuid.NewString(), signing.OperationVerify, false)))

	t.Run("filter by session", func(t *testing.T) {
		query := audit.NewRecordQuery()
		query.SessionID = sessionID

		records, err := tc.AuditRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("filter by operation", func(t *testing.T) {
		query := audit.NewRecordQuery()
		query.Operation = signing.OperationVerify

		records, err := tc.AuditRepo.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.False(t, records[0].Result)
	})

	t.Run("filter by creation time", func(t *testing.T) {
		query := audit.NewRecordQuery()
		query.DateTimeCreated = time.Now().UTC().Add(time.Hour)

		records, err := tc.AuditRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("pagination and sorting", func(t *testing.T) {
		query := audit.NewRecordQuery()
		query.SortBy = "date_time_created"
		query.SortOrder = "desc"
		query.Limit = 2

		records, err := tc.AuditRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("invalid query rejected", func(t *testing.T) {
		query := audit.NewRecordQuery()
		query.SortOrder = "sideways"

		_, err := tc.AuditRepo.List(ctx, query)
		assert.Error(t, err)
	})
}

func TestAuditSqliteRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	record := CreateTestRecord(t, uuid.NewString(), signing.OperationExport, true)
	require.NoError(t, tc.AuditRepo.Create(ctx, record))

	require.NoError(t, tc.AuditRepo.DeleteByID(ctx, record.ID))

	_, err := tc.AuditRepo.GetByID(ctx, record.ID)
	assert.ErrorContains(t, err, "not found")

	var count int64
	require.NoError(t, tc.DB.Table("audit_records").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
