package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/numpad/internal/config"
	"github.com/muurk/numpad/internal/logging"
	"github.com/muurk/numpad/internal/ui"
	"github.com/muurk/numpad/numfmt"
	"github.com/muurk/numpad/padtui"
)

// Command flags
var (
	formatCommit bool
	formatInt    int
	formatDec    int
	formatMin    int
	initForce    bool
)

func init() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(initCmd)
}

// outputWidth sizes report boxes to the terminal, or to the minimum width
// when output is redirected.
func outputWidth(cmd *cobra.Command) int {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ui.GetTerminalWidth()
	}
	return ui.MinTerminalWidth
}

// runForm is the root command: load the form file and run it.
func runForm(cmd *cobra.Command, args []string) error {
	form, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load form: %w", err)
	}
	logging.Info("Form loaded",
		zap.String("title", form.Title),
		zap.Int("fields", len(form.Fields)),
	)

	m := padtui.New(buildOptions(form, !noIcons))
	if err := padtui.Run(m); err != nil {
		return err
	}

	displays := m.Displays()
	result := ui.NewSuccessResult("Form closed")
	for _, fs := range form.Fields {
		result.AddDetail(fs.Label, displays[fs.Label])
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.SetWidth(outputWidth(cmd)))
	return nil
}

// formatCmd runs the formatter on raw strings
var formatCmd = &cobra.Command{
	Use:   "format RAW...",
	Short: "Format raw keypad input",
	Long: `Run the field formatter on raw input strings and print the results.

Without --commit the live (while typing) rendering is shown; with --commit
the rendering applied when a field loses focus, including zero padding of
the fraction.`,
	Example: `  # Live rendering
  numpad-demo format 1234567 12.345

  # Committed rendering with three decimals
  numpad-demo format --commit --dec 3 --min 3 5 .5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	def := numfmt.Default()
	formatCmd.Flags().BoolVar(&formatCommit, "commit", false, "Apply commit-phase formatting")
	formatCmd.Flags().IntVar(&formatInt, "int", def.IntegerDigits, "Maximum integer digits")
	formatCmd.Flags().IntVar(&formatDec, "dec", def.DecimalDigits, "Maximum decimal digits")
	formatCmd.Flags().IntVar(&formatMin, "min", def.MinDecimals, "Minimum decimals on commit")
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts := numfmt.Options{IntegerDigits: formatInt, DecimalDigits: formatDec, MinDecimals: formatMin}
	if opts.IntegerDigits < 0 || opts.DecimalDigits < 0 || opts.MinDecimals < 0 {
		return errors.New("digit counts must not be negative")
	}

	phase := "live"
	if formatCommit {
		phase = "commit"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.NewHeader("format", "numpad-demo format",
		ui.Param{Key: "Phase", Value: phase},
		ui.Param{Key: "Integer digits", Value: strconv.Itoa(opts.IntegerDigits)},
		ui.Param{Key: "Decimal digits", Value: strconv.Itoa(opts.DecimalDigits)},
		ui.Param{Key: "Min decimals", Value: strconv.Itoa(opts.MinDecimals)},
	).SetWidth(outputWidth(cmd)))

	result := ui.NewSuccessResult(fmt.Sprintf("%d value(s) formatted", len(args)))
	for _, raw := range args {
		display := numfmt.Format(raw, formatCommit, opts)
		value := "not a number"
		if v, err := numfmt.Parse(display); err == nil {
			value = strconv.FormatFloat(v, 'f', -1, 64)
		}
		result.AddDetail(strconv.Quote(raw), display+"  ("+value+")")
	}
	fmt.Fprintln(out, result.SetWidth(outputWidth(cmd)))
	return nil
}

// initCmd writes the default form file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default form file",
	Long: `Write the built-in demo form to --config (or the default location) so it
can be edited. An existing file is only replaced after confirmation or
with --force.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !initForce {
		if !ui.ConfirmOverwrite(out, cmd.InOrStdin(), path) {
			return nil
		}
	}

	form := config.Default()
	if err := form.Save(path); err != nil {
		fmt.Fprintln(out, ui.NewFailureResult("Could not write form file", err,
			"Check that the directory is writable",
			"Pass --config to choose another location",
		).SetWidth(outputWidth(cmd)))
		return err
	}

	result := ui.NewSuccessResult("Form file written",
		ui.Detail{Key: "Path", Value: path},
		ui.Detail{Key: "Fields", Value: strconv.Itoa(len(form.Fields))},
	)
	for _, fs := range form.Fields {
		result.AddDetail("Field", fs.Label)
	}
	fmt.Fprintln(out, result.SetWidth(outputWidth(cmd)))
	return nil
}
