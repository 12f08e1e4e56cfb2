package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"cobolt/pkg/config"
)

var (
	cfgPath string
	cfg     = config.Default()

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "cobolt",
	Short: "cobolt — a teaching interpreter for a small COBOL subset",
	Long: `Cobolt interprets a fixed subset of COBOL: typed working-storage
variables, MOVE/ADD/SUBTRACT/MULTIPLY/DIVIDE/COMPUTE, DISPLAY and
ACCEPT, IF/ELSE, EVALUATE, PERFORM [UNTIL], GOTO, and STOP RUN.

Commands:
  run      Run a program (the built-in demo when no file is given)
  inspect  Show a program's structure without running it
  version  Show version information
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env next to the working directory may set COBOLT_* vars;
		// missing files are fine.
		_ = godotenv.Load()
		if path := os.Getenv("COBOLT_CONFIG"); path != "" && !cmd.Flags().Changed("config") {
			cfgPath = path
		}
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "cobolt.toml", "path to runner config")
	rootCmd.AddCommand(runCmd, inspectCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

// readLines loads a source file as trimmed-EOL text lines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}
