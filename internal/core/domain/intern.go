package domain

import "unique"

// InternPath canonicalizes a path string through the unique package. The
// same include directories appear in almost every compile action of a
// workspace, so rewritten paths share one backing allocation instead of one
// per action.
func InternPath(p string) string {
	return unique.Make(p).Value()
}
