// Package cli implements the bikerent command-line interface, a reference
// driver that wires the capability variants together and runs rentals.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	fleet     string
	notifier  string
	backend   string
	jsonMode  bool
	debug     bool
}

// NewRootCmd creates the top-level "bikerent" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "bikerent",
		Short: "Rent bikes through pluggable search, printing and notification services",
		Long: "bikerent wires a bike searcher, an info service, an order printer and a\n" +
			"notifier into a rental service and runs rentals against a fleet of bikes.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		// With Args set cobra routes unknown subcommands to RunE instead of
		// reporting them itself.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return cmd.Help()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/bikerental)")
	root.PersistentFlags().StringVar(&f.fleet, "fleet", "", "fleet file (default: fleet.yaml in the config directory)")
	root.PersistentFlags().StringVar(&f.notifier, "notifier", "", "notification channel: email or sms (default from config.yaml)")
	root.PersistentFlags().StringVar(&f.backend, "backend", "", "searcher backend: memory or sqlite (default from config.yaml)")
	root.PersistentFlags().BoolVar(&f.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(f))
	root.AddCommand(newDemoCmd(f))
	root.AddCommand(newRentCmd(f))
	root.AddCommand(newListCmd(f))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bikerent:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// userErrors are caused by bad input rather than by the environment.
var userErrors = []error{
	types.ErrInvalidHours,
	types.ErrNotifierUnknown,
	types.ErrBackendUnknown,
	types.ErrInvalidBikeKind,
	types.ErrInvalidBikeName,
	types.ErrInvalidFleet,
}

// exitCode maps err to exitUserError for input errors and exitSysError otherwise.
func exitCode(err error) int {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return exitUserError
	}
	return exitSysError
}

// usageError marks a command-line usage problem reported by cobra: an unknown
// subcommand or flag, or the wrong number of positional arguments.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// checkArgs wraps a cobra arity check so that its errors map to exitUserError.
func checkArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
