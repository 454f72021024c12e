package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aphrodite-os/forge/cmd/forge/commands"
	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	runFunc func(ctx context.Context, req domain.RunRequest) error
}

func (m *mockApp) Run(ctx context.Context, req domain.RunRequest) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, req)
	}
	return nil
}

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cli := commands.New(a, mockLogger)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	return cli, mockLogger
}

func TestCLI_ModeSelection(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantMode   domain.Mode
		wantTarget string
		wantWarn   bool
	}{
		{name: "default compile all targets", args: []string{}, wantMode: domain.ModeCompile},
		{name: "short check flag", args: []string{"-c"}, wantMode: domain.ModeCheck},
		{name: "long check flag", args: []string{"--check"}, wantMode: domain.ModeCheck},
		{name: "short format flag", args: []string{"-f"}, wantMode: domain.ModeFormat},
		{name: "long format flag", args: []string{"--format"}, wantMode: domain.ModeFormat},
		{name: "format wins over check", args: []string{"-c", "-f"}, wantMode: domain.ModeFormat, wantWarn: true},
		{name: "positional target", args: []string{"mips64"}, wantMode: domain.ModeCompile, wantTarget: "mips64"},
		{name: "check single target", args: []string{"-c", "x86"}, wantMode: domain.ModeCheck, wantTarget: "x86"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured domain.RunRequest
			cli, mockLogger := newCLI(t, &mockApp{
				runFunc: func(_ context.Context, req domain.RunRequest) error {
					captured = req
					return nil
				},
			})
			if tt.wantWarn {
				mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
			}

			cli.SetArgs(tt.args)
			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.wantMode, captured.Mode)
			assert.Equal(t, tt.wantTarget, captured.Target)
		})
	}
}

func TestCLI_UnknownFlag(t *testing.T) {
	cli, _ := newCLI(t, &mockApp{
		runFunc: func(_ context.Context, _ domain.RunRequest) error {
			panic("should not be called")
		},
	})

	cli.SetArgs([]string{"--bogus"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFlag)
}

func TestCLI_RunFailurePropagates(t *testing.T) {
	cli, _ := newCLI(t, &mockApp{
		runFunc: func(_ context.Context, _ domain.RunRequest) error {
			return zerr.New("simulated build failure")
		},
	})

	cli.SetArgs([]string{})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated build failure")
}

func TestCLI_DegradedParsing(t *testing.T) {
	var captured domain.RunRequest
	cli, mockLogger := newCLI(t, &mockApp{
		runFunc: func(_ context.Context, req domain.RunRequest) error {
			captured = req
			return nil
		},
	})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	cli.SetGetenv(func(key string) string {
		if key == commands.EnvNoFlags {
			return "1"
		}
		return ""
	})

	// Flags are ignored, the positional target is honored.
	cli.SetArgs([]string{"-c", "mips64"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, domain.ModeCompile, captured.Mode)
	assert.Equal(t, "mips64", captured.Target)
}

func TestCLI_StrictMissingCapability(t *testing.T) {
	cli, _ := newCLI(t, &mockApp{
		runFunc: func(_ context.Context, _ domain.RunRequest) error {
			panic("should not be called")
		},
	})

	cli.SetGetenv(func(key string) string {
		switch key {
		case commands.EnvNoFlags, commands.EnvStrictFlags:
			return "1"
		default:
			return ""
		}
	})

	cli.SetArgs([]string{"x86"})
	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrCapabilityMissing)
}
