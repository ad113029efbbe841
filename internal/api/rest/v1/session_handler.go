package v1

import (
	"fmt"
	"net/http"

	"github.com/docseal/docseal/internal/domain/sessions"
	"github.com/gin-gonic/gin"
)

// SessionHandler defines the interface for handling signing session operations
type SessionHandler interface {
	Open(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Close(ctx *gin.Context)
}

type sessionHandler struct {
	sessionService sessions.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService sessions.SessionService) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
	}
}

// Open handles the POST request to open a new signing session
// @Summary Open a signing session
// @Description Open a new in-memory signing session. Keys attached later live only for the lifetime of the session.
// @Tags Session
// @Accept json
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (handler *sessionHandler) Open(ctx *gin.Context) {
	session, err := handler.sessionService.Open(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error opening session: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	sessionResponse := SessionResponse{
		ID:              session.ID,
		HasPrivateKey:   session.HasPrivateKey(),
		HasPublicKey:    session.HasPublicKey(),
		DateTimeCreated: session.DateTimeCreated,
	}

	ctx.JSON(http.StatusCreated, sessionResponse)
}

// GetByID handles the GET request to retrieve a signing session by ID
// @Summary Retrieve a signing session by ID
// @Description Fetch the state of a signing session, including whether keys are attached.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (handler *sessionHandler) GetByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	session, err := handler.sessionService.GetByID(ctx, sessionID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("session with id %s not found", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	sessionResponse := SessionResponse{
		ID:              session.ID,
		HasPrivateKey:   session.HasPrivateKey(),
		HasPublicKey:    session.HasPublicKey(),
		DateTimeCreated: session.DateTimeCreated,
	}

	ctx.JSON(http.StatusOK, sessionResponse)
}

// Close handles the DELETE request to close a signing session
// @Summary Close a signing session
// @Description Close a signing session and discard its key material.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 "Session closed"
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (handler *sessionHandler) Close(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	if err := handler.sessionService.Close(ctx, sessionID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error closing session with id %s", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	// 204 responses carry no body
	ctx.Status(http.StatusNoContent)
}
