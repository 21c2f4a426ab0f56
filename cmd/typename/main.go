package main

import (
	"os"

	"github.com/Fuzzier/constexpr-type-name/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
