package main

import (
	"github.com/spf13/cobra"

	"github.com/coregx/stepexpr"
	"github.com/coregx/stepexpr/cmd/stepexpr/typesfile"
)

var rootCmd = &cobra.Command{
	Use:   "stepexpr",
	Short: "Compile and match step-definition expressions",
	Long: "stepexpr compiles step-definition expressions (literal text with\n" +
		"{parameter}, (optional) and this/that constructs) into anchored\n" +
		"regular expressions, and matches input text against them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// loadRegistry builds the parameter type registry for a command run:
// builtins plus any definitions from the --types file.
func loadRegistry() (*stepexpr.ParameterTypeRegistry, error) {
	registry := stepexpr.NewParameterTypeRegistry()
	if flagTypesFile == "" {
		return registry, nil
	}
	if err := typesfile.LoadInto(flagTypesFile, registry); err != nil {
		return nil, err
	}
	return registry, nil
}
