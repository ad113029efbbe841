package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeValidation validates an RSA modulus size in bits. Zero is treated
// as unset so the caller can fall back to the default size.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()

	switch keySize {
	case 0, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}
