// Package commands implements the CLI for the forge orchestrator.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aphrodite-os/forge/internal/build"
	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for forge.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
	args    []string
	getenv  func(string) string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, req domain.RunRequest) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
		getenv: os.Getenv,
	}

	rootCmd := &cobra.Command{
		Use:           "forge [target]",
		Short:         "Build the aphrodite kernel for its hardware targets",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("check", "c", false, "Type/borrow check every selected target without building")
	rootCmd.Flags().BoolP("format", "f", false, "Format the whole source tree and exit")

	// An unrecognized flag is a hard argument-parse failure.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(domain.ErrUnknownFlag, err)
	})

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	check, _ := cmd.Flags().GetBool("check")
	format, _ := cmd.Flags().GetBool("format")

	mode, warned := domain.ResolveMode(check, format)
	if warned {
		c.logger.Warn("check and format are mutually exclusive; format implies a check, running format only")
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	}

	return c.app.Run(cmd.Context(), domain.RunRequest{Mode: mode, Target: target})
}

// Execute probes the flag-parsing capability and runs the CLI. When the
// capability is unavailable the run degrades to positional-only parsing
// instead of aborting, unless strict mode turns the absence into a failure.
func (c *CLI) Execute(ctx context.Context) error {
	capability, err := ProbeFlagCapability(c.getenv)
	if err != nil {
		return err
	}

	if capability == CapabilityDegraded {
		c.logger.Warn("flag parsing unavailable, ignoring flags; only a positional target is honored")
		return c.app.Run(ctx, ParsePositional(c.args))
	}

	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the CLI.
func (c *CLI) SetArgs(args []string) {
	c.args = args
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetGetenv overrides the environment lookup used by the capability probe.
// Used for testing.
func (c *CLI) SetGetenv(getenv func(string) string) {
	c.getenv = getenv
}
