package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/stepexpr"
)

var compileCmd = &cobra.Command{
	Use:   "compile <expression>",
	Short: "Compile an expression and print its regex pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		expr, err := stepexpr.Compile(args[0], registry)
		if err != nil {
			return err
		}
		printExpression(expr)
		return nil
	},
}

func printExpression(expr *stepexpr.Expression) {
	fmt.Println(labelStyle.Render("expression:"), valueStyle.Render(expr.Source()))
	fmt.Println(labelStyle.Render("pattern:   "), valueStyle.Render(expr.Pattern()))
	types := expr.ParameterTypes()
	if len(types) == 0 {
		fmt.Println(labelStyle.Render("parameters:"), dimStyle.Render("none"))
		return
	}
	fmt.Println(labelStyle.Render("parameters:"))
	for i, pt := range types {
		fmt.Printf("  %s {%s}\n", dimStyle.Render(fmt.Sprintf("%d.", i+1)), pt.Name())
	}
}
