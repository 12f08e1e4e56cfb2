package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cobolt/pkg/interp"
	"cobolt/pkg/source"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show a program's structure without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := interp.Demo
		label := "built-in demo"
		if len(args) > 0 {
			var err error
			lines, err = readLines(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			label = args[0]
		}

		prog := source.Parse(lines)
		printStructure(label, prog, cfg.Inspect.Plain)
		return nil
	},
}

func printStructure(label string, prog *source.Program, plain bool) {
	heading := func(s string) string { return headingStyle.Render(s) }
	name := func(s string) string { return nameStyle.Render(s) }
	dim := func(s string) string { return dimStyle.Render(s) }
	if plain {
		identity := func(s string) string { return s }
		heading, name, dim = identity, identity, identity
	}

	fmt.Println(heading("Program"), label)
	if prog.ID != "" {
		fmt.Println(dim("  PROGRAM-ID:"), prog.ID)
	}

	fmt.Println(heading("Declarations"))
	if len(prog.Declarations) == 0 {
		fmt.Println(dim("  (none)"))
	}
	for _, d := range prog.Declarations {
		kind := "text"
		if d.Pic.Numeric {
			kind = "numeric"
		}
		fmt.Printf("  %s  %s, width %d\n", name(d.Name), kind, d.Pic.Length)
	}

	fmt.Println(heading("Paragraphs"))
	if len(prog.Paragraphs) == 0 {
		fmt.Println(dim("  (none)"))
	}
	labels := make([]string, 0, len(prog.Paragraphs))
	for l := range prog.Paragraphs {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		fmt.Printf("  %s  %s\n", name(l), dim(fmt.Sprintf("%d statement(s)", len(prog.Paragraphs[l]))))
	}

	fmt.Println(heading("Body"), fmt.Sprintf("%d line(s)", len(prog.Body)))
}
