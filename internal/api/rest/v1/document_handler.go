package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/gin-gonic/gin"
)

// DocumentHandler defines the interface for signing and verifying uploaded documents
type DocumentHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type documentHandler struct {
	documentSignService   signing.DocumentSignService
	documentVerifyService signing.DocumentVerifyService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentSignService signing.DocumentSignService, documentVerifyService signing.DocumentVerifyService) DocumentHandler {
	return &documentHandler{
		documentSignService:   documentSignService,
		documentVerifyService: documentVerifyService,
	}
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return content, nil
}

// Sign handles the POST request to sign an uploaded document
// @Summary Sign an uploaded document
// @Description Compute the SHA-256 digest of the uploaded document and sign it with the session private key. The signature is returned Base64 encoded.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "Document to sign"
// @Success 201 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/signatures [post]
func (handler *documentHandler) Sign(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid form data: missing document file"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	document, err := readFormFile(fileHeader)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	signResult, err := handler.documentSignService.Sign(ctx, sessionID, fileHeader.Filename, document)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error signing document: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	signResponse := SignResponse{
		DocumentName:   signResult.DocumentName,
		DocumentDigest: signResult.DocumentDigest,
		Signature:      signResult.SignatureB64,
		SignedAt:       signResult.SignedAt,
	}

	ctx.JSON(http.StatusCreated, signResponse)
}

// Verify handles the POST request to verify a signature over an uploaded document
// @Summary Verify a document signature
// @Description Verify a Base64 encoded signature over the uploaded document with the session public key. A mismatch yields valid=false, not an error.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "Document to verify"
// @Param signature formData string true "Base64 encoded signature"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/verifications [post]
func (handler *documentHandler) Verify(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid form data: missing document file"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	document, err := readFormFile(fileHeader)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	signatureB64 := ctx.PostForm("signature")
	if len(signatureB64) == 0 {
		// The signature may also arrive as a detached .sig file upload
		sigHeader, err := ctx.FormFile("signature_file")
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = "invalid form data: missing signature"
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}

		sigContent, err := readFormFile(sigHeader)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = err.Error()
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		signatureB64 = strings.TrimSpace(string(sigContent))
	}

	verifyResult, err := handler.documentVerifyService.Verify(ctx, sessionID, fileHeader.Filename, document, signatureB64)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, signing.ErrInvalidSignatureFormat) {
			errorResponse.Message = fmt.Sprintf("invalid signature format: %v", err.Error())
		} else {
			errorResponse.Message = fmt.Sprintf("error verifying document: %v", err.Error())
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	verifyResponse := VerifyResponse{
		DocumentName:   verifyResult.DocumentName,
		DocumentDigest: verifyResult.DocumentDigest,
		Valid:          verifyResult.Valid,
		VerifiedAt:     verifyResult.VerifiedAt,
	}

	ctx.JSON(http.StatusOK, verifyResponse)
}
