package domain

// WriteSummary describes the outcome of persisting the compilation database.
type WriteSummary struct {
	// Path is the absolute path of the database file.
	Path string

	// Entries is the number of records in the database.
	Entries int

	// Digest is the xxhash of the serialized database.
	Digest uint64

	// Unchanged reports that the file already held identical content and
	// was left untouched.
	Unchanged bool
}
