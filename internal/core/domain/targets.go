package domain

import (
	"fmt"
	"strings"
)

// SplitInvocation separates a generate invocation into bazel flags and
// target patterns. Flags are the leading dash-prefixed arguments and are
// forwarded to bazel verbatim. The scan stops at the first target pattern,
// where negated patterns ("-//..." or "-@...") count as patterns rather
// than flags.
func SplitInvocation(args []string) (flags, patterns []string) {
	split := len(args)
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") || isNegatedPattern(arg) {
			split = i
			break
		}
	}
	return args[:split], args[split:]
}

// QueryExpression builds the aquery expression selecting all C++ compile
// actions for the given target patterns. Negated patterns are removed via
// set subtraction. An empty pattern list selects the whole workspace.
func QueryExpression(patterns []string) string {
	if len(patterns) == 0 {
		patterns = []string{"//..."}
	}

	var selected, subtracted []string
	for _, pattern := range patterns {
		if isNegatedPattern(pattern) {
			subtracted = append(subtracted, pattern[1:])
		} else {
			selected = append(selected, pattern)
		}
	}

	return fmt.Sprintf("mnemonic(CppCompile, set(%s) - set(%s))",
		strings.Join(selected, " "), strings.Join(subtracted, " "))
}

func isNegatedPattern(s string) bool {
	return strings.HasPrefix(s, "-//") || strings.HasPrefix(s, "-@")
}
