package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/aphrodite-os/forge/internal/app"
	"github.com/aphrodite-os/forge/internal/build"
	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports/mocks"
	"github.com/aphrodite-os/forge/internal/engine/dispatcher"
	"github.com/aphrodite-os/forge/internal/engine/packager"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	components *app.Components
	loader     *mocks.MockConfigLoader
	toolchain  *mocks.MockToolchain
	logger     *mocks.MockLogger
}

func newTestComponents(t *testing.T) *testComponents {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockToolchain := mocks.NewMockToolchain(ctrl)
	mockStore := mocks.NewMockBuildInfoStore(ctrl)
	mockImager := mocks.NewMockImageAuthor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	d := dispatcher.New(mockToolchain, mockStore, packager.New(mockImager, mockLogger), mockLogger)
	application := app.New(mockLoader, d, mockLogger)
	application.Root = t.TempDir()

	return &testComponents{
		components: &app.Components{App: application, Logger: mockLogger},
		loader:     mockLoader,
		toolchain:  mockToolchain,
		logger:     mockLogger,
	}
}

func provider(tc *testComponents) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return tc.components, func() {}, nil
	}
}

func TestRun_CheckSuccess(t *testing.T) {
	tc := newTestComponents(t)

	cfg, err := domain.NewConfig(map[string]string{
		domain.KeyVersion: build.Version,
		domain.KeyTargets: "x86",
		"x86":             "x86-unknown-none",
	})
	assert.NoError(t, err)

	tc.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	tc.toolchain.EXPECT().Check(gomock.Any(), "x86-unknown-none").Return(nil)

	exitCode := run(context.Background(), []string{"--check"}, new(bytes.Buffer), provider(tc))
	assert.Equal(t, 0, exitCode)
}

func TestRun_VersionMismatchExitsNonZero(t *testing.T) {
	tc := newTestComponents(t)

	cfg, err := domain.NewConfig(map[string]string{
		domain.KeyVersion: "0.0.1",
		domain.KeyTargets: "x86",
		"x86":             "x86-unknown-none",
	})
	assert.NoError(t, err)

	// No toolchain expectations: zero invocations on a blocked gate.
	tc.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	tc.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), nil, new(bytes.Buffer), provider(tc))
	assert.Equal(t, 1, exitCode)
}

func TestRun_ProviderFailure(t *testing.T) {
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), nil, stderr, func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, zerr.New("wiring failed")
	})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}
