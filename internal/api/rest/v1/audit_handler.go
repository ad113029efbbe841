package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuditHandler defines the interface for reading the audit trail
type AuditHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type auditHandler struct {
	auditTrailService audit.TrailService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditTrailService audit.TrailService) AuditHandler {
	return &auditHandler{
		auditTrailService: auditTrailService,
	}
}

// List handles the GET request to list audit records with optional query parameters
// @Summary List audit records based on query parameters
// @Description Fetch audit trail entries filtered by operation, session and creation date, with pagination and sorting options.
// @Tags Audit
// @Accept json
// @Produce json
// @Param operation query string false "Operation (generate, sign, verify, import, export)"
// @Param sessionId query string false "Session ID"
// @Param dateTimeCreated query string false "Record creation date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} AuditRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /audit [get]
func (handler *auditHandler) List(ctx *gin.Context) {
	query := audit.NewRecordQuery()

	if operation := ctx.Query("operation"); len(operation) > 0 {
		query.Operation = operation
	}

	if sessionID := ctx.Query("sessionId"); len(sessionID) > 0 {
		query.SessionID = sessionID
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	// Non-numeric values parse to 0 and would clobber the query defaults
	if limit := ctx.Query("limit"); len(limit) > 0 {
		if parsed := utils.ConvertToInt(limit); parsed > 0 {
			query.Limit = parsed
		}
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		if parsed := utils.ConvertToInt(offset); parsed > 0 {
			query.Offset = parsed
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	records, err := handler.auditTrailService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []AuditRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, NewAuditRecordResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an audit record by ID
// @Summary Retrieve an audit record by ID
// @Description Fetch a single audit trail entry by its unique ID.
// @Tags Audit
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} AuditRecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /audit/{id} [get]
func (handler *auditHandler) GetByID(ctx *gin.Context) {
	recordID := ctx.Param("id")

	record, err := handler.auditTrailService.GetByID(ctx, recordID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("audit record with id %s not found", recordID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, NewAuditRecordResponse(record))
}
