package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fuzzier/constexpr-type-name/internal/cli/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var (
	// Global flags shared by all subcommands
	outputFormat string
	noColor      bool
	debug        bool

	// cliConfig and logger are populated by the root command before any
	// subcommand runs
	cliConfig *config.Config
	logger    = zap.NewNop()
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "typename",
		Short: "Type name extraction and refinement tooling",
		Long: color.CyanString(`TypeName - Type Name Extraction

TypeName derives human-readable type names from instantiated generic
function signatures and refines them into tidy and base forms.

Features:
  • Signature capture with per-type memoization
  • Offset calibration against the int and uint signatures
  • Keyword stripping for foreign compiler spellings
  • Table and JSON output for tooling`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags beat file and environment values.
			if cmd.Flags().Changed("format") {
				cfg.Format = outputFormat
			} else {
				outputFormat = cfg.Format
			}
			if cmd.Flags().Changed("no-color") {
				cfg.NoColor = noColor
			} else {
				noColor = cfg.NoColor
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			} else {
				debug = cfg.Debug
			}

			if outputFormat != "table" && outputFormat != "json" {
				return fmt.Errorf("unsupported format: %s (supported: json, table)", outputFormat)
			}

			if noColor {
				color.NoColor = true
			}

			logger = newLogger(debug)
			logger.Debug("configuration loaded",
				zap.String("format", outputFormat),
				zap.Int("custom_dialects", len(cfg.Dialects)))

			cliConfig = cfg
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format: json or table")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewCleanCommand())
	rootCmd.AddCommand(NewCalibrationCommand())
	rootCmd.AddCommand(NewDialectsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// newLogger builds the CLI logger. Debug mode gets a development logger,
// otherwise logging is disabled.
func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		// Fall back to nop logger
		return zap.NewNop()
	}
	return zapLogger
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the typename version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("typename version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
