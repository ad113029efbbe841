//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditHandler_List_Success(t *testing.T) {
	mockTrailService := new(MockTrailService)

	handler := NewAuditHandler(mockTrailService)

	record := &audit.Record{
		ID:              "rec-123",
		SessionID:       "abc-123",
		Operation:       "sign",
		DocumentName:    "contract.txt",
		Algorithm:       "RSA",
		KeySize:         2048,
		Result:          true,
		DateTimeCreated: time.Now(),
	}

	mockTrailService.
		On("List", mock.Anything, mock.Anything).
		Return([]*audit.Record{record}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/audit?operation=sign&limit=10", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rec-123")
	mockTrailService.AssertExpectations(t)
}

func TestAuditHandler_List_NonNumericPaginationKeepsDefaults(t *testing.T) {
	mockTrailService := new(MockTrailService)

	handler := NewAuditHandler(mockTrailService)

	mockTrailService.
		On("List", mock.Anything, mock.MatchedBy(func(query *audit.RecordQuery) bool {
			return query.Limit == 100 && query.Offset == 0
		})).
		Return([]*audit.Record{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/audit?limit=abc&offset=xyz", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockTrailService.AssertExpectations(t)
}

func TestAuditHandler_List_InvalidOperation(t *testing.T) {
	mockTrailService := new(MockTrailService)

	handler := NewAuditHandler(mockTrailService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/audit?operation=encrypt", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockTrailService.AssertNotCalled(t, "List")
}

func TestAuditHandler_GetByID_Success(t *testing.T) {
	mockTrailService := new(MockTrailService)

	handler := NewAuditHandler(mockTrailService)

	record := &audit.Record{
		ID:              "rec-123",
		SessionID:       "abc-123",
		Operation:       "generate",
		Algorithm:       "RSA",
		KeySize:         2048,
		Result:          true,
		DateTimeCreated: time.Now(),
	}

	mockTrailService.
		On("GetByID", mock.Anything, "rec-123").
		Return(record, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/audit/rec-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "rec-123"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"operation":"generate"`)
	mockTrailService.AssertExpectations(t)
}

func TestAuditHandler_GetByID_NotFound(t *testing.T) {
	mockTrailService := new(MockTrailService)

	handler := NewAuditHandler(mockTrailService)

	mockTrailService.
		On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("record not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/audit/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockTrailService.AssertExpectations(t)
}
