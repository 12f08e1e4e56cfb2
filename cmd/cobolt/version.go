package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobolt/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cobolt v" + version.Version)
	},
}
