package ports

// CredentialHasher derives an opaque hash from a plaintext secret at
// registration time. The hash is what user aggregates store; plaintext
// never reaches persistence.
type CredentialHasher interface {
	Hash(password string) (string, error)
}

// CredentialVerifier checks a plaintext secret against a stored hash.
// Implementations must compare in a way that does not leak timing
// information about the stored credential.
type CredentialVerifier interface {
	Verify(hash, password string) bool
}
