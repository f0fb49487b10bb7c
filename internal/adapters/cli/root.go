// Package cli is the command-line front end of the language loader.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MegaNoam/CitizensCMD/internal/config"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/resources"
)

const version = "2.0.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitLoadError    = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitRuntimeError = 4
)

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error {
	return &exitError{code: code, err: err}
}

// app holds the state shared by every command of one invocation.
type app struct {
	flagLang    string
	flagDataDir string
	out         io.Writer
	errOut      io.Writer
	exitCode    int
}

// Run executes the command line with the process streams and returns an exit code.
func Run(args []string) int {
	return RunWith(args, os.Stdout, os.Stderr)
}

// RunWith executes the command line writing to out and errOut.
func RunWith(args []string, out, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(errOut, "❌ %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return ExitUsageError
	}
	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "citizenscmd",
		Short:         "CitizensCMD language files",
		Long:          "Resolves CitizensCMD language files against the bundled defaults and prints their messages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.flagLang, "lang", "", "language identifier (overrides CITIZENSCMD_LANG)")
	root.PersistentFlags().StringVar(&a.flagDataDir, "data-dir", "", "plugin data folder (overrides CITIZENSCMD_DATA_DIR)")

	root.AddCommand(a.loadCmd())
	root.AddCommand(a.getCmd())
	root.AddCommand(a.listCmd())
	root.AddCommand(a.publishCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print citizenscmd version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "citizenscmd version %s\n", version)
			langs, err := resources.NewBundle().Languages()
			if err != nil {
				return fail(ExitRuntimeError, err)
			}
			fmt.Fprintf(a.out, "bundled languages: %s\n", strings.Join(langs, ", "))
			return nil
		},
	})
	return root
}

// config loads the configuration and applies command-line overrides.
func (a *app) config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fail(ExitConfigError, err)
	}
	if a.flagLang != "" {
		cfg.Language = a.flagLang
	}
	if a.flagDataDir != "" {
		cfg.DataDir = a.flagDataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fail(ExitConfigError, err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}
