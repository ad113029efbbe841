// Package audit defines the operation audit trail: one record per signing
// operation carrying metadata only (operation, session, document name and
// digest, result). Documents and key material are never stored.
package audit
