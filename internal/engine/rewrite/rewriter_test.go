package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports/mocks"
	"go.trai.ch/compdb/internal/engine/rewrite"
	"go.uber.org/mock/gomock"
)

// testRoots is a fixed bundle so path expectations stay readable.
var testRoots = domain.Roots{
	Workspace:  "/ws",
	ExecRoot:   "/ws/bazel-ws",
	OutputBase: "/ob",
}

// proberFor builds a FileProber that reports exactly the given paths as
// existing.
func proberFor(t *testing.T, existing ...string) *mocks.MockFileProber {
	t.Helper()
	ctrl := gomock.NewController(t)

	set := make(map[string]struct{}, len(existing))
	for _, path := range existing {
		set[path] = struct{}{}
	}

	prober := mocks.NewMockFileProber(ctrl)
	prober.EXPECT().Exists(gomock.Any()).DoAndReturn(func(path string) bool {
		_, ok := set[path]
		return ok
	}).AnyTimes()
	return prober
}

func TestRewrite_WellFormedAction(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/ws/lib/foo.cpp"))

	action := domain.BuildAction{
		ID: "CppCompile-1",
		Arguments: []string{
			"gcc",
			"-c", "lib/foo.cpp",
			"-o", "bazel-out/k8-fastbuild/bin/lib/foo.o",
			"-Ilib",
			"-iquote", "external/boost",
			"-isystem", "bazel-ws/external/absl",
			"-I", "bazel-out/k8-fastbuild/bin",
		},
	}

	entry, err := engine.Rewrite(testRoots, action)
	require.NoError(t, err)

	assert.Equal(t, "/ws/bazel-ws", entry.Directory)
	assert.Equal(t, "/ws/lib/foo.cpp", entry.File)
	assert.Equal(t, "bazel-out/k8-fastbuild/bin/lib/foo.o", entry.Output)

	assert.Equal(t, []string{
		"gcc",
		"-c", "/ws/lib/foo.cpp",
		"-o", "bazel-out/k8-fastbuild/bin/lib/foo.o",
		"-Ilib",
		"-iquote", "/ob/external/boost",
		"-isystem", "/ob/external/absl",
		"-I", "bazel-out/k8-fastbuild/bin",
		// Local include directories are duplicated workspace-absolute.
		"-I", "/ws/lib",
	}, entry.Arguments)
}

func TestRewrite_ExternalPathsAlwaysLandInOutputBase(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/ws/a.cpp"))

	// The bare and the exec-root-qualified form must rewrite identically.
	for _, dir := range []string{"external/zlib/include", "bazel-ws/external/zlib/include"} {
		action := domain.BuildAction{
			ID:        "CppCompile-ext",
			Arguments: []string{"gcc", "-c", "a.cpp", "-o", "a.o", "-I", dir},
		}

		entry, err := engine.Rewrite(testRoots, action)
		require.NoError(t, err)
		assert.Equal(t, "/ob/external/zlib/include", entry.Arguments[6], "input %q", dir)
	}
}

func TestRewrite_AbsoluteIncludeIsNeverRewritten(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/ws/a.cpp"))

	action := domain.BuildAction{
		ID:        "CppCompile-abs",
		Arguments: []string{"gcc", "-c", "a.cpp", "-o", "a.o", "-isystem", "/usr/include"},
	}

	entry, err := engine.Rewrite(testRoots, action)
	require.NoError(t, err)
	assert.Equal(t, "/usr/include", entry.Arguments[6])
	// Absolute directories are not local, no duplicate is appended.
	assert.Len(t, entry.Arguments, 7)
}

func TestRewrite_AbsoluteSourceStaysPut(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/abs/gen/a.cpp"))

	action := domain.BuildAction{
		ID:        "CppCompile-abssrc",
		Arguments: []string{"gcc", "-c", "/abs/gen/a.cpp", "-o", "a.o"},
	}

	entry, err := engine.Rewrite(testRoots, action)
	require.NoError(t, err)

	// The argument vector and the file field must name the same path.
	assert.Equal(t, "/abs/gen/a.cpp", entry.File)
	assert.Equal(t, "/abs/gen/a.cpp", entry.Arguments[2])
}

func TestRewrite_MissingSourceFlag(t *testing.T) {
	engine := rewrite.New(proberFor(t))

	action := domain.BuildAction{
		ID:        "CppCompile-nosrc",
		Arguments: []string{"gcc", "-o", "a.o", "-I", "lib"},
	}

	_, err := engine.Rewrite(testRoots, action)
	require.ErrorIs(t, err, domain.ErrMissingSourceFlag)
}

func TestRewrite_MissingOutputFlag(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/ws/a.cpp"))

	action := domain.BuildAction{
		ID:        "CppCompile-noout",
		Arguments: []string{"gcc", "-c", "a.cpp"},
	}

	_, err := engine.Rewrite(testRoots, action)
	require.ErrorIs(t, err, domain.ErrMissingOutputFlag)
}

func TestRewrite_SourceResolvedAgainstExecRootSecond(t *testing.T) {
	// Generated sources exist only under the exec root.
	engine := rewrite.New(proberFor(t, "/ws/bazel-ws/gen/proto.pb.cc"))

	action := domain.BuildAction{
		ID:        "CppCompile-gen",
		Arguments: []string{"gcc", "-c", "gen/proto.pb.cc", "-o", "gen/proto.pb.o"},
	}

	entry, err := engine.Rewrite(testRoots, action)
	require.NoError(t, err)
	assert.Equal(t, "/ws/bazel-ws/gen/proto.pb.cc", entry.File)
}

func TestRewrite_SourceNotFound(t *testing.T) {
	engine := rewrite.New(proberFor(t))

	action := domain.BuildAction{
		ID:        "CppCompile-gone",
		Arguments: []string{"gcc", "-c", "gone.cpp", "-o", "gone.o"},
	}

	_, err := engine.Rewrite(testRoots, action)
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestRewrite_NeverAliasesTheAction(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/ws/lib/foo.cpp"))

	original := []string{"gcc", "-c", "lib/foo.cpp", "-o", "foo.o", "-Ilib"}
	action := domain.BuildAction{ID: "CppCompile-alias", Arguments: original}

	entry, err := engine.Rewrite(testRoots, action)
	require.NoError(t, err)

	entry.Arguments[0] = "clang"
	assert.Equal(t, "gcc", action.Arguments[0])
	assert.Equal(t, "lib/foo.cpp", action.Arguments[2], "source must only be rewritten in the copy")
}

func TestRewrite_FusedFlagWithoutValueIsPassedThrough(t *testing.T) {
	engine := rewrite.New(proberFor(t, "/ws/a.cpp"))

	// A bare "-I" at the end of the vector has no value to consume and is
	// neither fused nor split; it passes through untouched.
	action := domain.BuildAction{
		ID:        "CppCompile-bare",
		Arguments: []string{"gcc", "-c", "a.cpp", "-o", "a.o", "-I"},
	}

	entry, err := engine.Rewrite(testRoots, action)
	require.NoError(t, err)
	assert.Equal(t, "-I", entry.Arguments[5])
	assert.Len(t, entry.Arguments, 6)
}
