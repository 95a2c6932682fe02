// Command stepexpr compiles and matches step-definition expressions from
// the command line.
//
//	stepexpr compile "I have {int} cup(s)"
//	stepexpr match "I have {int} cup(s)" "I have 2 cups"
//	stepexpr types
//
// Custom parameter types can be supplied from a YAML file with --types.
package main

import (
	"fmt"
	"os"
)

var flagTypesFile string

func main() {
	rootCmd.AddCommand(compileCmd, matchCmd, typesCmd)

	rootCmd.PersistentFlags().StringVarP(&flagTypesFile, "types", "t", "",
		"YAML file with additional parameter type definitions")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
