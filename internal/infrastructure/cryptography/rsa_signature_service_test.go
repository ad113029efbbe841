//go:build unit
// +build unit

package cryptography

import (
	"crypto/rsa"
	"testing"

	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestKeySize2048 = 2048
)

func setupSignatureService(t *testing.T) signing.SignatureService {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	service, err := NewRSASignatureService(logger)
	require.NoError(t, err)
	return service
}

func TestRSASignatureService_GenerateKeyPair(t *testing.T) {
	service := setupSignatureService(t)

	t.Run("GenerateKeyPair", func(t *testing.T) {
		privateKey, publicKey, err := service.GenerateKeyPair(TestKeySize2048)
		assert.NoError(t, err)
		assert.NotNil(t, privateKey)
		assert.NotNil(t, publicKey)
		assert.IsType(t, &rsa.PublicKey{}, publicKey)
		assert.Equal(t, TestKeySize2048, privateKey.N.BitLen())
	})

	t.Run("UnsupportedKeySize", func(t *testing.T) {
		_, _, err := service.GenerateKeyPair(1024)
		assert.Error(t, err)
	})
}

func TestRSASignatureService_SignAndVerify(t *testing.T) {
	service := setupSignatureService(t)

	privateKey, publicKey, err := service.GenerateKeyPair(TestKeySize2048)
	require.NoError(t, err)

	document := []byte("a document worth signing")

	signature, err := service.Sign(document, privateKey)
	require.NoError(t, err)
	assert.Len(t, signature, publicKey.Size())

	t.Run("RoundTrip", func(t *testing.T) {
		valid, err := service.Verify(document, signature, publicKey)
		assert.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("SingleBitFlipInvalidatesSignature", func(t *testing.T) {
		tampered := append([]byte{}, document...)
		tampered[0] ^= 0x01

		valid, err := service.Verify(tampered, signature, publicKey)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("UnrelatedKeyDoesNotVerify", func(t *testing.T) {
		_, otherPublicKey, err := service.GenerateKeyPair(TestKeySize2048)
		require.NoError(t, err)

		valid, err := service.Verify(document, signature, otherPublicKey)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("NilPrivateKey", func(t *testing.T) {
		_, err := service.Sign(document, nil)
		assert.ErrorIs(t, err, signing.ErrInvalidKey)
	})

	t.Run("NilPublicKey", func(t *testing.T) {
		_, err := service.Verify(document, signature, nil)
		assert.ErrorIs(t, err, signing.ErrInvalidKey)
	})

	t.Run("EmptySignature", func(t *testing.T) {
		_, err := service.Verify(document, nil, publicKey)
		assert.ErrorIs(t, err, signing.ErrInvalidSignatureFormat)
	})

	t.Run("WrongLengthSignature", func(t *testing.T) {
		_, err := service.Verify(document, signature[:len(signature)-1], publicKey)
		assert.ErrorIs(t, err, signing.ErrInvalidSignatureFormat)
	})

	t.Run("EmptyDocumentSigns", func(t *testing.T) {
		emptySignature, err := service.Sign([]byte{}, privateKey)
		require.NoError(t, err)

		valid, err := service.Verify([]byte{}, emptySignature, publicKey)
		assert.NoError(t, err)
		assert.True(t, valid)
	})
}

func TestRSASignatureService_ExportImport(t *testing.T) {
	service := setupSignatureService(t)

	privateKey, publicKey, err := service.GenerateKeyPair(TestKeySize2048)
	require.NoError(t, err)

	t.Run("PrivateKeyRoundTrip", func(t *testing.T) {
		pemBytes, err := service.ExportPrivateKey(privateKey)
		require.NoError(t, err)
		assert.Contains(t, string(pemBytes), "BEGIN RSA PRIVATE KEY")

		imported, err := service.ImportPrivateKey(pemBytes)
		require.NoError(t, err)
		assert.Equal(t, privateKey.D, imported.D)
		assert.Equal(t, privateKey.N, imported.N)
	})

	t.Run("PublicKeyRoundTrip", func(t *testing.T) {
		pemBytes, err := service.ExportPublicKey(publicKey)
		require.NoError(t, err)
		assert.Contains(t, string(pemBytes), "BEGIN PUBLIC KEY")

		imported, err := service.ImportPublicKey(pemBytes)
		require.NoError(t, err)
		assert.Equal(t, publicKey.N, imported.N)
		assert.Equal(t, publicKey.E, imported.E)
	})

	// A signature produced before export verifies with the re-imported key
	t.Run("FunctionalIdentityAfterRoundTrip", func(t *testing.T) {
		document := []byte("exported and re-imported")

		signature, err := service.Sign(document, privateKey)
		require.NoError(t, err)

		pemBytes, err := service.ExportPublicKey(publicKey)
		require.NoError(t, err)
		imported, err := service.ImportPublicKey(pemBytes)
		require.NoError(t, err)

		valid, err := service.Verify(document, signature, imported)
		assert.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("MalformedPem", func(t *testing.T) {
		_, err := service.ImportPrivateKey([]byte("not a pem"))
		assert.ErrorIs(t, err, signing.ErrInvalidKeyFormat)

		_, err = service.ImportPublicKey([]byte("not a pem"))
		assert.ErrorIs(t, err, signing.ErrInvalidKeyFormat)
	})

	t.Run("WrongBlockType", func(t *testing.T) {
		pemBytes, err := service.ExportPublicKey(publicKey)
		require.NoError(t, err)

		_, err = service.ImportPrivateKey(pemBytes)
		assert.ErrorIs(t, err, signing.ErrInvalidKeyFormat)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := service.ExportPrivateKey(nil)
		assert.ErrorIs(t, err, signing.ErrInvalidKey)

		_, err = service.ExportPublicKey(nil)
		assert.ErrorIs(t, err, signing.ErrInvalidKey)
	})
}
