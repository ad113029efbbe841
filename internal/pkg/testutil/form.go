package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateMultipartBody builds a multipart request body with one file part and
// optional extra form fields. It returns the body and the content type header.
func CreateMultipartBody(t *testing.T, fieldName, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if fileName != "" {
		part, err := writer.CreateFormFile(fieldName, fileName)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}
