package ports

// FileHasher defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// Sum computes the digest of an in-memory byte slice.
	Sum(data []byte) uint64

	// SumFile computes the digest of a file's content.
	SumFile(path string) (uint64, error)
}
