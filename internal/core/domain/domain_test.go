package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/core/domain"
)

func TestSplitInvocation(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantPatterns []string
	}{
		{
			name: "empty invocation",
		},
		{
			name:         "flags only",
			args:         []string{"--config=remote", "--noshow_progress"},
			wantFlags:    []string{"--config=remote", "--noshow_progress"},
			wantPatterns: []string{},
		},
		{
			name:         "patterns only",
			args:         []string{"//lib/...", "//app:main"},
			wantFlags:    []string{},
			wantPatterns: []string{"//lib/...", "//app:main"},
		},
		{
			name:         "flags then patterns",
			args:         []string{"--config=remote", "//lib/...", "-//lib/vendor/..."},
			wantFlags:    []string{"--config=remote"},
			wantPatterns: []string{"//lib/...", "-//lib/vendor/..."},
		},
		{
			name:         "negated pattern is not a flag",
			args:         []string{"-//lib/vendor/...", "//lib/..."},
			wantFlags:    []string{},
			wantPatterns: []string{"-//lib/vendor/...", "//lib/..."},
		},
		{
			name:         "negated external pattern is not a flag",
			args:         []string{"--keep_going", "-@boost//..."},
			wantFlags:    []string{"--keep_going"},
			wantPatterns: []string{"-@boost//..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, patterns := domain.SplitInvocation(tt.args)
			assert.Equal(t, len(tt.wantFlags), len(flags))
			assert.Equal(t, len(tt.wantPatterns), len(patterns))
			for i, flag := range tt.wantFlags {
				assert.Equal(t, flag, flags[i])
			}
			for i, pattern := range tt.wantPatterns {
				assert.Equal(t, pattern, patterns[i])
			}
		})
	}
}

func TestQueryExpression(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     string
	}{
		{
			name:     "no patterns selects the whole workspace",
			patterns: nil,
			want:     "mnemonic(CppCompile, set(//...) - set())",
		},
		{
			name:     "positive patterns",
			patterns: []string{"//lib/...", "//app:main"},
			want:     "mnemonic(CppCompile, set(//lib/... //app:main) - set())",
		},
		{
			name:     "negated patterns are subtracted",
			patterns: []string{"//...", "-//third_party/...", "-@boost//..."},
			want:     "mnemonic(CppCompile, set(//...) - set(//third_party/... @boost//...))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.QueryExpression(tt.patterns))
		})
	}
}

func TestRoots(t *testing.T) {
	t.Run("conventional exec root", func(t *testing.T) {
		roots := domain.NewRoots("/home/dev/acme", "/home/dev/.cache/bazel/output")
		assert.Equal(t, "/home/dev/acme/bazel-acme", roots.ExecRoot)
		assert.Equal(t, "bazel-acme", roots.ExecRootBase())
		require.NoError(t, roots.Validate())
	})

	t.Run("relative workspace is invalid", func(t *testing.T) {
		roots := domain.NewRoots("acme", "/output")
		assert.Error(t, roots.Validate())
	})

	t.Run("missing output base is invalid", func(t *testing.T) {
		roots := domain.NewRoots("/home/dev/acme", "")
		assert.Error(t, roots.Validate())
	})
}

func TestCompilationEntryClone(t *testing.T) {
	entry := domain.CompilationEntry{
		Directory: "/ws/bazel-ws",
		File:      "/ws/lib/foo.cpp",
		Arguments: []string{"gcc", "-c", "lib/foo.cpp"},
		Output:    "bazel-out/foo.o",
	}

	clone := entry.Clone()
	clone.Arguments = append(clone.Arguments, "-include", "lib/foo.hpp")
	clone.Arguments[0] = "clang"

	assert.Equal(t, []string{"gcc", "-c", "lib/foo.cpp"}, entry.Arguments)
	assert.Len(t, clone.Arguments, 5)
}

func TestInternPath(t *testing.T) {
	a := domain.InternPath("/output/external/boost/include")
	b := domain.InternPath("/output/external/" + "boost/include")
	assert.Equal(t, a, b)
}
