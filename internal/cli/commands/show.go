package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fuzzier/constexpr-type-name/internal/cli/catalog"
	"github.com/Fuzzier/constexpr-type-name/internal/cli/ui"
	"github.com/Fuzzier/constexpr-type-name/typename"
)

var verbose bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the demonstration type catalog",
		Long: `Show the demonstration type catalog.

Runs a fixed set of types through the extraction pipeline and prints the
raw, tidy, and base form of every name. Named value types get a short
base form while compound types keep their full qualification.`,
		Example: `  # Print the catalog as a table
  typename show

  # Print the catalog as JSON for tooling
  typename show --format json

  # Include registry statistics
  typename show --verbose`,
		RunE: runShowCommand,
	}

	// Add command-specific flags
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show registry statistics after the catalog")

	return cmd
}

// runShowCommand executes the 'show' command
func runShowCommand(cmd *cobra.Command, args []string) error {
	rows := catalog.Rows()
	writer := cmd.OutOrStdout()

	logger.Debug("catalog extracted", zap.Int("rows", len(rows)))

	if outputFormat == "json" {
		return formatRowsAsJSON(rows, writer)
	}
	return formatRowsAsTable(rows, writer, verbose)
}

// formatRowsAsTable formats catalog rows as a human-readable table
func formatRowsAsTable(rows []catalog.Row, writer io.Writer, verbose bool) error {
	table := ui.NewTable(writer, noColor, "Kind", "Raw", "Name", "Base")
	for _, r := range rows {
		table.AddRow(r.Kind, r.Raw, r.Name, r.Base)
	}
	table.Render()

	if verbose {
		hits, misses := typename.Stats()

		fmt.Fprintln(writer)
		stats := ui.NewKeyValueTable(writer, noColor)
		stats.AddRow("Registered types", fmt.Sprintf("%d", typename.Count()))
		stats.AddRow("Registry hits", fmt.Sprintf("%d", hits))
		stats.AddRow("Registry misses", fmt.Sprintf("%d", misses))
		stats.Render()
	}

	return nil
}

// formatRowsAsJSON formats catalog rows as JSON
func formatRowsAsJSON(rows []catalog.Row, writer io.Writer) error {
	type jsonOutput struct {
		TotalCount int           `json:"total_count"`
		Entries    []catalog.Row `json:"entries"`
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonOutput{
		TotalCount: len(rows),
		Entries:    rows,
	})
}
