package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fuzzier/constexpr-type-name/internal/cli/ui"
	"github.com/Fuzzier/constexpr-type-name/typename"
)

var dialectName string

// NewCleanCommand creates the clean command
func NewCleanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [name...]",
		Short: "Refine raw type names from another compiler",
		Long: `Refine raw type names from another compiler.

Applies the selected dialect's keyword stripping to each name and derives
the base form where one exists. Names are taken from the arguments, or
from standard input one per line when no arguments are given.`,
		Example: `  # Tidy an MSVC spelling
  typename clean "struct std::pair<int,int>"

  # Pipe names through the refiner
  cat names.txt | typename clean

  # Use a dialect declared in typename.yaml
  typename clean --dialect itanium "typename T::value_type"`,
		RunE: runCleanCommand,
	}

	// Add command-specific flags
	cmd.Flags().StringVar(&dialectName, "dialect", "msvc", "Dialect used for keyword stripping")

	return cmd
}

// runCleanCommand executes the 'clean' command
func runCleanCommand(cmd *cobra.Command, args []string) error {
	dialect, err := cliConfig.ResolveDialect(dialectName)
	if err != nil {
		suggestions := ui.Suggest(dialectName, cliConfig.DialectNames())
		fmt.Fprint(cmd.ErrOrStderr(), ui.DialectNotFoundError(dialectName, suggestions, noColor))
		return err
	}

	logger.Debug("dialect resolved",
		zap.String("dialect", dialect.Name),
		zap.Int("keywords", len(dialect.Keywords)))

	inputs := args
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading names from stdin: %w", err)
		}
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no names to clean")
	}

	writer := cmd.OutOrStdout()
	if outputFormat == "json" {
		return formatCleanedAsJSON(dialect, inputs, writer)
	}
	return formatCleanedAsTable(dialect, inputs, writer)
}

// formatCleanedAsTable formats refined names as a human-readable table
func formatCleanedAsTable(dialect typename.Dialect, inputs []string, writer io.Writer) error {
	table := ui.NewTable(writer, noColor, "Input", "Tidy", "Base")
	for _, input := range inputs {
		table.AddRow(input, dialect.Clean(input), dialect.Base(input))
	}
	table.Render()
	return nil
}

// formatCleanedAsJSON formats refined names as JSON
func formatCleanedAsJSON(dialect typename.Dialect, inputs []string, writer io.Writer) error {
	type cleanedName struct {
		Input string `json:"input"`
		Tidy  string `json:"tidy"`
		Base  string `json:"base"`
	}

	type jsonOutput struct {
		Dialect string        `json:"dialect"`
		Names   []cleanedName `json:"names"`
	}

	out := jsonOutput{
		Dialect: dialect.Name,
		Names:   make([]cleanedName, 0, len(inputs)),
	}
	for _, input := range inputs {
		out.Names = append(out.Names, cleanedName{
			Input: input,
			Tidy:  dialect.Clean(input),
			Base:  dialect.Base(input),
		})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
