package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fuzzier/constexpr-type-name/internal/cli/config"
)

func TestDialectsCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		cmd := NewDialectsCommand()
		assert.Equal(t, "dialects", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotEmpty(t, cmd.Long)
		assert.NotEmpty(t, cmd.Example)
	})
}

func TestRunDialectsCommand(t *testing.T) {
	t.Run("lists built-in dialects", func(t *testing.T) {
		cmd := NewDialectsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		// Reset global flags
		outputFormat = "table"
		noColor = true
		cliConfig = &config.Config{Format: "table"}

		err := cmd.RunE(cmd, []string{})
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "go")
		assert.Contains(t, output, "msvc")
		assert.Contains(t, output, "struct")
	})

	t.Run("includes configured dialects", func(t *testing.T) {
		cmd := NewDialectsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		outputFormat = "table"
		noColor = true
		cliConfig = &config.Config{
			Format: "table",
			Dialects: []config.DialectConfig{
				{Name: "itanium", Keywords: []string{"typename"}, Separator: ":"},
			},
		}

		err := cmd.RunE(cmd, []string{})
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "itanium")
		assert.Contains(t, output, "typename")
	})

	t.Run("emits JSON", func(t *testing.T) {
		cmd := NewDialectsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		outputFormat = "json"
		noColor = true
		cliConfig = &config.Config{Format: "json"}

		err := cmd.RunE(cmd, []string{})
		require.NoError(t, err)

		var output []struct {
			Name      string   `json:"name"`
			Separator string   `json:"separator"`
			Keywords  []string `json:"keywords"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		require.Len(t, output, 2)
		assert.Equal(t, "go", output[0].Name)
		assert.Equal(t, ".", output[0].Separator)
		assert.Equal(t, "msvc", output[1].Name)
		assert.Equal(t, ":", output[1].Separator)

		outputFormat = "table"
	})
}
