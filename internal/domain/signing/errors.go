package signing

import "errors"

// ErrInvalidKey indicates a nil or structurally malformed RSA key was supplied
// to a signing or verification operation.
var ErrInvalidKey = errors.New("invalid key")

// ErrInvalidKeyFormat indicates PEM input that could not be decoded into an RSA key.
var ErrInvalidKeyFormat = errors.New("invalid key format")

// ErrInvalidSignatureFormat indicates a signature that is structurally malformed
// (empty, not Base64 at the UI boundary, or sized wrong for the key modulus).
// A well-formed signature that simply does not match is not an error.
var ErrInvalidSignatureFormat = errors.New("invalid signature format")

// ErrEntropyFailure indicates the secure random source failed during key
// generation. Treated as fatal and non-retriable.
var ErrEntropyFailure = errors.New("entropy source failure")
