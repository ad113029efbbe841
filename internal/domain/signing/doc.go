// Package signing defines the core contracts and error kinds for RSA document
// signing: key pair generation, SHA-256/PKCS#1 v1.5 signing and verification,
// and lossless PEM export/import of keys.
package signing
