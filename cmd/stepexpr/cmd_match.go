package main

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/coregx/stepexpr"
	"github.com/coregx/stepexpr/cmd/stepexpr/typesfile"
)

var flagHints []string

var matchCmd = &cobra.Command{
	Use:   "match <expression> <text>",
	Short: "Match text against an expression and print the typed arguments",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		expr, err := stepexpr.Compile(args[0], registry)
		if err != nil {
			return err
		}
		hints, err := parseHints(flagHints)
		if err != nil {
			return err
		}
		matched, err := expr.Match(args[1], hints...)
		if err != nil {
			return err
		}
		if matched == nil {
			fmt.Println(noStyle.Render("no match"))
			return nil
		}
		fmt.Println(okStyle.Render("match"))
		for i, arg := range matched {
			value, err := arg.Value()
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			fmt.Printf("  %s %s %s\n",
				dimStyle.Render(fmt.Sprintf("%d.", i+1)),
				valueStyle.Render(fmt.Sprintf("%v", value)),
				dimStyle.Render(fmt.Sprintf("(%T)", value)))
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringArrayVar(&flagHints, "hint", nil,
		"type hint for the parameter at the same position (repeatable)")
}

// parseHints maps --hint names to types. The hint at position i applies to
// the parameter at position i.
func parseHints(names []string) ([]reflect.Type, error) {
	hints := make([]reflect.Type, 0, len(names))
	for _, name := range names {
		t, err := typesfile.TypeByName(name)
		if err != nil {
			return nil, fmt.Errorf("--hint: %w", err)
		}
		hints = append(hints, t)
	}
	return hints, nil
}
