package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobolt/pkg/interp"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a COBOL program (built-in demo when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Run.Program
		if len(args) > 0 {
			path = args[0]
		}

		i := interp.New()
		if path == "" {
			fmt.Println("no source file given, running the built-in demo")
			fmt.Println()
			for _, line := range i.Run(interp.Demo) {
				fmt.Println(line)
			}
			return nil
		}

		out, err := i.RunFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for _, line := range out {
			fmt.Println(line)
		}
		return nil
	},
}
