package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available parameter types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		fmt.Println(headingStyle.Render("parameter types"))
		for _, pt := range registry.ParameterTypes() {
			target := "per call"
			if pt.TargetType() != nil {
				target = pt.TargetType().String()
			}
			fmt.Printf("  %-12s %s %s\n",
				labelStyle.Render("{"+pt.Name()+"}"),
				dimStyle.Render(target),
				valueStyle.Render(strings.Join(pt.Regexps(), "  ")))
		}
		return nil
	},
}
