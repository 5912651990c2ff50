package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/compdb/internal/adapters/telemetry"
	"go.trai.ch/compdb/internal/app"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports/mocks"
	"go.trai.ch/compdb/internal/engine/rewrite"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// fixture assembles Components around mocked ports so run can be exercised
// without graft or a bazel binary.
type fixture struct {
	finder  *mocks.MockWorkspaceFinder
	loader  *mocks.MockConfigLoader
	querier *mocks.MockActionQuerier

	provider ComponentProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		finder:  mocks.NewMockWorkspaceFinder(ctrl),
		loader:  mocks.NewMockConfigLoader(ctrl),
		querier: mocks.NewMockActionQuerier(ctrl),
	}

	prober := mocks.NewMockFileProber(ctrl)
	prober.EXPECT().Exists(gomock.Any()).Return(false).AnyTimes()
	writer := mocks.NewMockDatabaseWriter(ctrl)
	writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(domain.WriteSummary{}, nil).AnyTimes()
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	a := app.New(f.finder, f.loader, f.querier, rewrite.New(prober), writer, logger, telemetry.NewNoOp())
	components := &app.Components{App: a, Logger: logger, Telemetry: telemetry.NewNoOp()}
	f.provider = func(context.Context) (*app.Components, error) {
		return components, nil
	}
	return f
}

func TestRun_VersionExitsZero(t *testing.T) {
	f := newFixture(t)

	var stderr bytes.Buffer
	assert.Equal(t, 0, run(t.Context(), []string{"version"}, &stderr, f.provider))
}

func TestRun_InitializationFailureWritesToStderr(t *testing.T) {
	var stderr bytes.Buffer
	code := run(t.Context(), []string{"version"}, &stderr, func(context.Context) (*app.Components, error) {
		return nil, zerr.New("node graph cycle")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "node graph cycle")
}

func TestRun_QueryFailureMirrorsBazelExitCode(t *testing.T) {
	f := newFixture(t)

	f.finder.EXPECT().Discover(gomock.Any()).Return(domain.Roots{
		Workspace:  "/ws",
		ExecRoot:   "/ws/bazel-ws",
		OutputBase: "/ob",
	}, nil)
	f.loader.EXPECT().Load("/ws").Return(domain.ToolConfig{}, nil)
	f.querier.EXPECT().Query(gomock.Any(), "/ws", gomock.Nil(), gomock.Any()).
		Return(nil, &domain.QueryError{ExitCode: 37, Stderr: "ERROR: no such package"})

	var stderr bytes.Buffer
	assert.Equal(t, 37, run(t.Context(), []string{"generate"}, &stderr, f.provider))
}

func TestRun_DiscoveryFailureExitsOne(t *testing.T) {
	f := newFixture(t)

	f.finder.EXPECT().Discover(gomock.Any()).Return(domain.Roots{}, domain.ErrWorkspaceNotFound)

	var stderr bytes.Buffer
	assert.Equal(t, 1, run(t.Context(), []string{"generate"}, &stderr, f.provider))
}
