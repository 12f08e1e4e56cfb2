// Package interp executes structured COBOL programs.
//
// Control flow is line-cursor based: block constructs (IF, EVALUATE)
// discover their own boundaries lazily by consuming lines from the
// enclosing cursor during execution, then run their branches as nested
// blocks on the same call stack. GOTO runs the named paragraph as a
// nested call and returns to the statement that follows it; true COBOL
// jump semantics are intentionally out of scope.
//
// Failures stay local: unparseable statements are skipped, a failed
// expression makes its assignment a no-op, and the only user-visible
// error is the divide-by-zero diagnostic line. Run never panics or
// returns an error for program content.
package interp

import (
	"bufio"
	"io"
	"os"
	"strings"

	"cobolt/pkg/source"
	"cobolt/pkg/store"
)

// Interpreter runs one program at a time. Independent Run calls are
// self-contained: all state below is reset when a run starts.
type Interpreter struct {
	store      *store.Store
	paragraphs map[string][]string
	output     []string
	running    bool
	input      *bufio.Scanner
}

// New returns an interpreter reading ACCEPT input from stdin.
func New() *Interpreter {
	return &Interpreter{
		store: store.New(),
		input: bufio.NewScanner(os.Stdin),
	}
}

// SetInput redirects ACCEPT statements to r.
func (i *Interpreter) SetInput(r io.Reader) {
	i.input = bufio.NewScanner(r)
}

// RunFile reads the program at path and runs it.
func (i *Interpreter) RunFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return i.Run(strings.Split(text, "\n")), nil
}

// Run interprets the program and returns its captured output lines.
func (i *Interpreter) Run(lines []string) []string {
	prog := source.Parse(lines)

	i.store = store.New()
	for _, d := range prog.Declarations {
		i.store.Declare(d.Name, d.Pic)
	}
	i.paragraphs = prog.Paragraphs
	i.output = nil
	i.running = true

	i.execBlock(prog.Body)

	out := make([]string, len(i.output))
	copy(out, i.output)
	return out
}

// cursor is a forward-only, single-pass view over a statement sequence.
type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// execBlock runs a statement sequence until it is exhausted or the
// run-flag clears. Block constructs inside it consume further lines
// from the same cursor.
func (i *Interpreter) execBlock(lines []string) {
	cur := &cursor{lines: lines}
	for i.running {
		line, ok := cur.next()
		if !ok {
			break
		}
		line = strings.TrimSpace(line)
		if line != "" {
			i.exec(line, cur)
		}
	}
}

// exec dispatches one statement by its leading keyword. Anything
// unrecognized, paragraph labels included, is silently skipped.
func (i *Interpreter) exec(line string, cur *cursor) {
	upper := strings.ToUpper(line)
	switch {
	case strings.HasPrefix(upper, "MOVE"):
		i.execMove(line)
	case strings.HasPrefix(upper, "COMPUTE"):
		i.execCompute(line)
	case strings.HasPrefix(upper, "GOTO"):
		i.execGoto(line)
	case strings.HasPrefix(upper, "EVALUATE"):
		i.execEvaluate(line, cur)
	case strings.HasPrefix(upper, "ADD"):
		i.execArith(verbAdd, line)
	case strings.HasPrefix(upper, "SUBTRACT"):
		i.execArith(verbSubtract, line)
	case strings.HasPrefix(upper, "MULTIPLY"):
		i.execArith(verbMultiply, line)
	case strings.HasPrefix(upper, "DIVIDE"):
		i.execArith(verbDivide, line)
	case strings.HasPrefix(upper, "DISPLAY"):
		i.execDisplay(line)
	case strings.HasPrefix(upper, "ACCEPT"):
		i.execAccept(line)
	case strings.HasPrefix(upper, "IF"):
		i.execIf(line, cur)
	case strings.HasPrefix(upper, "PERFORM"):
		i.execPerform(line)
	case strings.HasPrefix(upper, "STOP RUN"):
		i.running = false
	}
}

func (i *Interpreter) echo(line string) {
	i.output = append(i.output, line)
}
