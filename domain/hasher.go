package domain

// Hasher is the core port for any hashing strategy. Used to fingerprint
// prompts in logs without writing them out.
type Hasher interface {
	Hash(data []byte) string
}
