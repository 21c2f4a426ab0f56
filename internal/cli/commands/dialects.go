package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fuzzier/constexpr-type-name/internal/cli/ui"
	"github.com/Fuzzier/constexpr-type-name/typename"
)

// NewDialectsCommand creates the dialects command
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List available name dialects",
		Long: `List available name dialects.

Shows the built-in dialects plus any declared in the configuration file,
with the scope separator and the keywords each one strips.`,
		Example: `  # List dialects
  typename dialects

  # Machine-readable form
  typename dialects --format json`,
		RunE: runDialectsCommand,
	}
}

// runDialectsCommand executes the 'dialects' command
func runDialectsCommand(cmd *cobra.Command, args []string) error {
	writer := cmd.OutOrStdout()

	names := cliConfig.DialectNames()
	dialects := make([]typename.Dialect, 0, len(names))
	for _, name := range names {
		d, err := cliConfig.ResolveDialect(name)
		if err != nil {
			return err
		}
		dialects = append(dialects, d)
	}

	if outputFormat == "json" {
		return formatDialectsAsJSON(dialects, writer)
	}
	return formatDialectsAsTable(dialects, writer)
}

// formatDialectsAsTable formats dialects as a human-readable table
func formatDialectsAsTable(dialects []typename.Dialect, writer io.Writer) error {
	table := ui.NewTable(writer, noColor, "Name", "Separator", "Keywords")
	for _, d := range dialects {
		keywords := "-"
		if len(d.Keywords) > 0 {
			keywords = strings.Join(d.Keywords, ", ")
		}
		table.AddRow(d.Name, string(d.Separator), keywords)
	}
	table.Render()
	return nil
}

// formatDialectsAsJSON formats dialects as JSON
func formatDialectsAsJSON(dialects []typename.Dialect, writer io.Writer) error {
	type jsonDialect struct {
		Name      string   `json:"name"`
		Separator string   `json:"separator"`
		Keywords  []string `json:"keywords,omitempty"`
	}

	out := make([]jsonDialect, 0, len(dialects))
	for _, d := range dialects {
		out = append(out, jsonDialect{
			Name:      d.Name,
			Separator: string(d.Separator),
			Keywords:  d.Keywords,
		})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
