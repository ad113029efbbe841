//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/pkg/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDocumentHandler_Sign_Success(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	document := []byte("contract body")

	signResult := &signing.SignResult{
		DocumentName:   "contract.txt",
		DocumentDigest: "0f3a",
		SignatureB64:   "c2lnbmF0dXJl",
		SignedAt:       time.Now(),
	}

	mockSignService.
		On("Sign", mock.Anything, "abc-123", "contract.txt", document).
		Return(signResult, nil)

	body, contentType := testutil.CreateMultipartBody(t, "file", "contract.txt", document, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/signatures", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Sign(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "c2lnbmF0dXJl")
	mockSignService.AssertExpectations(t)
}

func TestDocumentHandler_Sign_MissingFile(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	body, contentType := testutil.CreateMultipartBody(t, "file", "", nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/signatures", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Sign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSignService.AssertNotCalled(t, "Sign")
}

func TestDocumentHandler_Sign_WithoutPrivateKey(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	document := []byte("contract body")

	mockSignService.
		On("Sign", mock.Anything, "abc-123", "contract.txt", document).
		Return(nil, fmt.Errorf("session abc-123 has no private key"))

	body, contentType := testutil.CreateMultipartBody(t, "file", "contract.txt", document, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/signatures", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Sign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSignService.AssertExpectations(t)
}

func TestDocumentHandler_Verify_Success(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	document := []byte("contract body")

	verifyResult := &signing.VerifyResult{
		DocumentName:   "contract.txt",
		DocumentDigest: "0f3a",
		Valid:          true,
		VerifiedAt:     time.Now(),
	}

	mockVerifyService.
		On("Verify", mock.Anything, "abc-123", "contract.txt", document, "c2lnbmF0dXJl").
		Return(verifyResult, nil)

	body, contentType := testutil.CreateMultipartBody(t, "file", "contract.txt", document, map[string]string{
		"signature": "c2lnbmF0dXJl",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/verifications", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	mockVerifyService.AssertExpectations(t)
}

func TestDocumentHandler_Verify_InvalidSignatureIsNotAnError(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	document := []byte("tampered body")

	verifyResult := &signing.VerifyResult{
		DocumentName:   "contract.txt",
		DocumentDigest: "9e1c",
		Valid:          false,
		VerifiedAt:     time.Now(),
	}

	mockVerifyService.
		On("Verify", mock.Anything, "abc-123", "contract.txt", document, "c2lnbmF0dXJl").
		Return(verifyResult, nil)

	body, contentType := testutil.CreateMultipartBody(t, "file", "contract.txt", document, map[string]string{
		"signature": "c2lnbmF0dXJl",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/verifications", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
	mockVerifyService.AssertExpectations(t)
}

func TestDocumentHandler_Verify_BadBase64(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	document := []byte("contract body")

	mockVerifyService.
		On("Verify", mock.Anything, "abc-123", "contract.txt", document, "%%%").
		Return(nil, fmt.Errorf("%w: illegal base64 data", signing.ErrInvalidSignatureFormat))

	body, contentType := testutil.CreateMultipartBody(t, "file", "contract.txt", document, map[string]string{
		"signature": "%%%",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/verifications", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid signature format")
	mockVerifyService.AssertExpectations(t)
}

func TestDocumentHandler_Verify_MissingSignature(t *testing.T) {
	mockSignService := new(MockDocumentSignService)
	mockVerifyService := new(MockDocumentVerifyService)

	handler := NewDocumentHandler(mockSignService, mockVerifyService)

	body, contentType := testutil.CreateMultipartBody(t, "file", "contract.txt", []byte("contract body"), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/abc-123/verifications", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockVerifyService.AssertNotCalled(t, "Verify")
}
