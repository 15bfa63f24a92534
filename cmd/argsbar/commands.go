package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/argsbar/internal/argsbar"
	"github.com/muurk/argsbar/internal/config"
	"github.com/muurk/argsbar/internal/logging"
	"github.com/muurk/argsbar/internal/tui"
	"github.com/muurk/argsbar/internal/ui"
)

var (
	errCancelled = errors.New("cancelled")
	errRejected  = errors.New("text rejected")
	// errReported marks errors already shown in a result box
	errReported = errors.New("reported")
)

// Command flags
var (
	paramsPath string
	logLevel   string
	logFile    string
	width      int
	noDesc     bool
	jsonOutput bool
	forceInit  bool
)

// settings is filled in by setup before any command runs
var settings config.Settings

func init() {
	rootCmd.PersistentFlags().StringVar(&paramsPath, "params", "", "Parameter definitions file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Render width (0 uses the terminal width)")

	rootCmd.Flags().BoolVar(&noDesc, "no-desc", false, "Hide field descriptions")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print submitted values as JSON")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(paramsCmd)
}

// setup merges settings and starts logging
func setup(cmd *cobra.Command, args []string) error {
	var err error
	settings, err = config.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	output := settings.LogFile
	if output == "" {
		// stdout belongs to the bar
		output = "stderr"
	}
	if err := logging.InitializeToFile(settings.LogLevel, output); err != nil {
		return err
	}

	logging.Debug("Settings loaded",
		zap.String("params_file", settings.ParamsFile),
		zap.Int("width", settings.Width),
	)
	return nil
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout()).WithWidth(settings.Width)
}

// loadParams reads the configured parameter file. When no file was named
// explicitly and the default one does not exist, the built-in example set
// is used.
func loadParams(cmd *cobra.Command) (*config.ParamSet, string, error) {
	set, err := config.LoadParamSet(settings.ParamsFile)
	if err == nil {
		return set, settings.ParamsFile, nil
	}

	explicit := cmd.Flags().Changed("params") || os.Getenv("ARGSBAR_PARAMS_FILE") != ""
	if errors.Is(err, os.ErrNotExist) && !explicit {
		logging.Info("No params file, using built-in example", zap.String("path", settings.ParamsFile))
		return config.DefaultParamSet(), "built-in example (run 'argsbar init' to create a file)", nil
	}

	newPrinter(cmd).PrintError("Could not load parameters", err, []string{
		"Check the path given by --params or ARGSBAR_PARAMS_FILE",
		"Run 'argsbar init <path>' to write an example file",
		"Encoding names are string, integer, numeric and boolean",
	})
	return nil, "", fmt.Errorf("%w: %w", errReported, err)
}

func runBar(cmd *cobra.Command, args []string) error {
	set, source, err := loadParams(cmd)
	if err != nil {
		return err
	}

	bar := argsbar.NewBar(set.Parameters())
	showDesc := settings.ShowDescriptions && !noDesc

	model := tui.New(bar,
		tui.WithTitle("Arguments", source),
		tui.WithDescriptions(showDesc),
		tui.WithWidth(settings.Width),
	)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("bar error: %w", err)
	}

	result := final.(tui.Model).Result()
	if !result.Submitted {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		return errCancelled
	}

	if jsonOutput {
		return writeJSON(cmd, result)
	}

	newPrinter(cmd).PrintSummary(bar)
	if len(result.Missing) > 0 {
		return fmt.Errorf("missing required arguments: %v", result.Missing)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, result tui.Result) error {
	missing := result.Missing
	if missing == nil {
		missing = []string{}
	}
	out := struct {
		Values  map[string]string `json:"values"`
		Fields  []argsbar.Field   `json:"fields"`
		Missing []string          `json:"missing"`
	}{result.Values, result.Fields, missing}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if len(result.Missing) > 0 {
		return fmt.Errorf("missing required arguments: %v", result.Missing)
	}
	return nil
}

// checkCmd feeds text through an encoding
var checkCmd = &cobra.Command{
	Use:   "check <encoding> <text>",
	Short: "Check text against an encoding",
	Long: `Type text into a field of the given encoding, one character at a time,
and report the first character that would be rejected.

Valid encodings: string, integer, numeric, boolean.`,
	Example: `  # Accepted
  argsbar check numeric 3.14

  # Rejected at the second '.'
  argsbar check numeric 1.2.3

  # Prefixes of the literals are accepted
  argsbar check boolean tr`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	enc, err := argsbar.ParseEncoding(args[0])
	if err != nil {
		return err
	}
	text := args[1]
	p := newPrinter(cmd)

	var buffer string
	for _, ch := range text {
		if err := enc.PushChar(&buffer, ch); err != nil {
			p.PrintRejection(enc, text, err)
			return errRejected
		}
	}

	p.PrintSuccess(fmt.Sprintf("%q is a valid %s prefix", text, enc), []ui.Detail{
		{Key: "Encoding", Value: enc.String()},
		{Key: "Characters", Value: strconv.Itoa(len([]rune(text)))},
	})
	return nil
}

// initCmd writes the example parameter file
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example parameter file",
	Long: `Write an example parameter file covering every encoding.

Without a path the file goes to the default location in the configuration
directory. An existing file is only replaced after confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := settings.ParamsFile
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		if !ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), path) {
			return errCancelled
		}
	}

	set := config.DefaultParamSet()
	if err := set.Save(path); err != nil {
		return err
	}
	logging.Info("Params file written", zap.String("path", path))

	newPrinter(cmd).PrintSuccess("Parameter file written", []ui.Detail{
		{Key: "Path", Value: path},
		{Key: "Fields", Value: strconv.Itoa(len(set.Params))},
	})
	return nil
}

// paramsCmd lists the loaded parameters
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the configured parameters",
	RunE:  runParams,
}

func runParams(cmd *cobra.Command, args []string) error {
	set, source, err := loadParams(cmd)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, p := range set.Params {
		counts[p.Encoding.String()]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	details := []ui.Detail{{Key: "Fields", Value: strconv.Itoa(len(set.Params))}}
	for _, name := range names {
		details = append(details, ui.Detail{Key: name, Value: strconv.Itoa(counts[name])})
	}

	p := newPrinter(cmd)
	p.PrintHeader("Parameters", source, details)
	p.PrintBar(argsbar.NewBar(set.Parameters()), true)
	return nil
}
