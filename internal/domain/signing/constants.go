package signing

// AlgorithmRSA represents the RSA signature algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// DefaultKeySize is the RSA modulus size in bits used when none is requested
const DefaultKeySize = 2048

// Audit operation names
const (
	OperationGenerate = "generate"
	OperationSign     = "sign"
	OperationVerify   = "verify"
	OperationImport   = "import"
	OperationExport   = "export"
)
