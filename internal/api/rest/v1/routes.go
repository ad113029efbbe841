package v1

import (
	"github.com/docseal/docseal/internal/domain/audit"
	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/docseal/docseal/internal/domain/signing"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	sessionService sessions.SessionService,
	keyPairService signing.KeyPairService,
	documentSignService signing.DocumentSignService,
	documentVerifyService signing.DocumentVerifyService,
	auditTrailService audit.TrailService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Session Routes
	sessionHandler := NewSessionHandler(sessionService)
	v1.POST("/sessions", sessionHandler.Open)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.DELETE("/sessions/:id", sessionHandler.Close)

	// Key Routes
	keyHandler := NewKeyHandler(keyPairService)
	v1.POST("/sessions/:id/keys", keyHandler.Generate)
	v1.GET("/sessions/:id/keys/:type/file", keyHandler.DownloadByType)
	v1.POST("/sessions/:id/keys/import", keyHandler.Import)

	// Document Routes
	documentHandler := NewDocumentHandler(documentSignService, documentVerifyService)
	v1.POST("/sessions/:id/signatures", documentHandler.Sign)
	v1.POST("/sessions/:id/verifications", documentHandler.Verify)

	// Audit Routes
	auditHandler := NewAuditHandler(auditTrailService)
	v1.GET("/audit", auditHandler.List)
	v1.GET("/audit/:id", auditHandler.GetByID)
}
