package ports

// FileProber answers existence checks against the real filesystem. The
// rewrite engine depends on it instead of os.Stat so the path logic stays
// testable without materializing a bazel workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type FileProber interface {
	// Exists reports whether a regular file or directory exists at path.
	Exists(path string) bool
}
