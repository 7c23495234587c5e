// Numpad-demo runs a form of numeric fields that share one on-screen keypad.
//
// Every field opens the same keypad; focusing another field commits the
// current edit first, and dismissing the keypad blurs the form. The form is
// described by a YAML file so the formatting rules, bounds and keypad
// placement can be tried without recompiling.
//
// Usage:
//
//	numpad-demo [command] [flags]
//
// Running without arguments launches the form.
// See 'numpad-demo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/numpad/internal/logging"
	"github.com/muurk/numpad/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
	noIcons    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numpad-demo",
	Short: "Numeric form with a shared virtual keypad",
	Long: `A terminal form of numeric fields sharing one virtual keypad.

Click a field (or press tab) to edit it, type on the keypad with the mouse
or the keyboard, and press enter to commit. Values are formatted with
thousands grouping and a fixed number of decimals when committed.

If no command is specified, the form described by --config is launched.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Form file (default: <config dir>/numpad/form.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file; overrides "+logging.LogFileEnvVar)
	rootCmd.Flags().BoolVar(&noIcons, "no-icons", false, "Render the keypad without icon glyphs")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Banner("numpad-demo"))
	},
}
