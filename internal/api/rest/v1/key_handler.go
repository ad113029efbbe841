package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling session key pair operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	DownloadByType(ctx *gin.Context)
	Import(ctx *gin.Context)
}

type keyHandler struct {
	keyPairService signing.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService signing.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// Generate handles the POST request to generate an RSA key pair for a session
// @Summary Generate an RSA key pair for a session
// @Description Generate a fresh RSA key pair and attach it to the session. Key material never leaves the server except through the export endpoint.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param requestBody body GenerateKeyRequest true "Key generation parameters"
// @Success 201 {object} KeyPairInfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request GenerateKeyRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keyPairInfo, err := handler.keyPairService.Generate(ctx, sessionID, request.KeySize)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error generating key pair: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairInfoResponse(keyPairInfo))
}

// DownloadByType handles the GET request to download a session key in PEM format
// @Summary Download a session key by type
// @Description Download the private or public key of a session as a PEM file.
// @Tags Key
// @Accept json
// @Produce application/x-pem-file
// @Param id path string true "Session ID"
// @Param type path string true "Key type (private or public)"
// @Success 200 {file} file "Key content in PEM format"
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/keys/{type}/file [get]
func (handler *keyHandler) DownloadByType(ctx *gin.Context) {
	sessionID := ctx.Param("id")
	keyType := ctx.Param("type")

	var filename string
	switch keyType {
	case signing.KeyTypePrivate:
		filename = fmt.Sprintf("%s-private-key.pem", sessionID)
	case signing.KeyTypePublic:
		filename = fmt.Sprintf("%s-public-key.pem", sessionID)
	default:
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("unknown key type %s", keyType)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	pemBytes, err := handler.keyPairService.Export(ctx, sessionID, keyType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("could not export %s key for session %s: %v", keyType, sessionID, err.Error()),
		})
		return
	}

	ctx.Writer.Header().Set("Content-Type", "application/x-pem-file")
	ctx.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Writer.WriteHeader(http.StatusOK)

	if _, err := ctx.Writer.Write(pemBytes); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to write PEM bytes for session %s, error: %s", sessionID, err)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
}

// Import handles the POST request to import a PEM encoded key into a session
// @Summary Import a PEM encoded key into a session
// @Description Attach an existing RSA key to the session by uploading its PEM file. Importing a private key also attaches the public counterpart.
// @Tags Key
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param key_type formData string true "Key type (private or public)"
// @Param file formData file true "PEM encoded key file"
// @Success 201 {object} KeyPairInfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/keys/import [post]
func (handler *keyHandler) Import(ctx *gin.Context) {
	sessionID := ctx.Param("id")
	keyType := ctx.PostForm("key_type")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid form data: missing key file"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to open key file: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	pemBytes, err := io.ReadAll(file)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to read key file: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keyPairInfo, err := handler.keyPairService.Import(ctx, sessionID, keyType, pemBytes)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, signing.ErrInvalidKeyFormat) {
			errorResponse.Message = fmt.Sprintf("invalid key format: %v", err.Error())
		} else {
			errorResponse.Message = fmt.Sprintf("error importing key: %v", err.Error())
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairInfoResponse(keyPairInfo))
}
