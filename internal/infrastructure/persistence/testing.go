package persistence

import (
	"testing"
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/infrastructure/persistence/models"
	"github.com/docseal/docseal/internal/pkg/config"
	"github.com/docseal/docseal/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext bundles the database handle and repositories used by tests.
type TestContext struct {
	DB        *gorm.DB
	AuditRepo audit.RecordRepository
}

// SetupTestDB opens a database of the given type, migrates the schema and
// returns repositories ready for testing. The connection is closed on cleanup.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	settings := config.DatabaseSettings{Type: dbType}
	db, err := NewDBConnection(settings)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	require.NoError(t, db.AutoMigrate(&models.AuditRecordModel{}))

	auditRepo, err := NewGormAuditRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:        db,
		AuditRepo: auditRepo,
	}
}

// CreateTestRecord builds a valid audit record for the given session and operation.
func CreateTestRecord(t *testing.T, sessionID, operation string, result bool) *audit.Record {
	t.Helper()

	return &audit.Record{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Operation:       operation,
		DocumentName:    "contract.pdf",
		DocumentDigest:  "6c9b0d1d2e8b6c1a92b3b3d2c8e3ff1a2b4c5d6e7f8091a2b3c4d5e6f7a8b9c0",
		Algorithm:       signing.AlgorithmRSA,
		KeySize:         signing.DefaultKeySize,
		Result:          result,
		DateTimeCreated: time.Now().UTC(),
	}
}
