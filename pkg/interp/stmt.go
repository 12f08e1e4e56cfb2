package interp

import (
	"regexp"
	"strconv"
	"strings"

	"cobolt/pkg/expr"
	"cobolt/pkg/store"
)

var intLiteral = regexp.MustCompile(`^-?\d+$`)

// clean strips surrounding space and the statement-terminating period.
func clean(line string) string {
	return strings.TrimSuffix(strings.TrimSpace(line), ".")
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"')
}

// operand resolves a MOVE source token: quoted literal, integer literal,
// or variable reference.
func (i *Interpreter) operand(token string) store.Value {
	if isQuoted(token) {
		return store.Text{Value: token[1 : len(token)-1]}
	}
	if intLiteral.MatchString(token) {
		n, _ := strconv.Atoi(token)
		return store.Int{Value: n}
	}
	return i.store.Get(token)
}

// MOVE <source> TO <target>
func (i *Interpreter) execMove(line string) {
	cleaned := clean(line)
	toIdx := strings.LastIndex(strings.ToUpper(cleaned), " TO ")
	if toIdx < len("MOVE") {
		return
	}
	src := strings.TrimSpace(cleaned[len("MOVE"):toIdx])
	target := strings.TrimSpace(cleaned[toIdx+len(" TO "):])
	i.store.Set(target, i.operand(src))
}

// COMPUTE <target> = <expression>
// A failed evaluation leaves the target untouched.
func (i *Interpreter) execCompute(line string) {
	cleaned := clean(line)
	eq := strings.IndexByte(cleaned, '=')
	if eq < len("COMPUTE") {
		return
	}
	target := strings.TrimSpace(cleaned[len("COMPUTE"):eq])
	val, err := expr.Eval(strings.TrimSpace(cleaned[eq+1:]), i.store)
	if err != nil {
		return
	}
	i.store.Set(target, store.Int{Value: val})
}

type arithVerb int

const (
	verbAdd arithVerb = iota
	verbSubtract
	verbMultiply
	verbDivide
)

// execArith handles the fixed four-token forms ADD/SUBTRACT/MULTIPLY/
// DIVIDE <int-literal> TO|FROM|BY|INTO <target>. The operand must be a
// literal integer. A zero divisor emits a diagnostic line and leaves
// the target unchanged; the run continues.
func (i *Interpreter) execArith(verb arithVerb, line string) {
	parts := strings.Fields(clean(line))
	if len(parts) < 4 {
		return
	}
	operand, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	target := parts[3]

	// Non-integer current values count as zero here; only the
	// expression evaluator parses text into numbers.
	old := 0
	if n, ok := i.store.Get(target).(store.Int); ok {
		old = n.Value
	}

	switch verb {
	case verbAdd:
		i.store.Set(target, store.Int{Value: old + operand})
	case verbSubtract:
		i.store.Set(target, store.Int{Value: old - operand})
	case verbMultiply:
		i.store.Set(target, store.Int{Value: old * operand})
	case verbDivide:
		if operand == 0 {
			i.echo("ERROR: DIVIDE BY ZERO")
			return
		}
		i.store.Set(target, store.Int{Value: old / operand})
	}
}

// DISPLAY <quoted-literal> | <identifier>
func (i *Interpreter) execDisplay(line string) {
	cleaned := clean(line)
	if len(cleaned) <= len("DISPLAY") {
		return
	}
	after := strings.TrimSpace(cleaned[len("DISPLAY"):])
	if after == "" {
		return
	}
	if isQuoted(after) {
		i.echo(after[1 : len(after)-1])
		return
	}
	i.echo(i.store.Get(strings.Fields(after)[0]).Display())
}

// ACCEPT <identifier>
// An unavailable input stream makes the statement a no-op. The write
// goes through the store so declared slots keep their picture kind.
func (i *Interpreter) execAccept(line string) {
	parts := strings.Fields(clean(line))
	if len(parts) < 2 {
		return
	}
	if i.input == nil || !i.input.Scan() {
		return
	}
	text := i.input.Text()
	if intLiteral.MatchString(text) {
		n, _ := strconv.Atoi(text)
		i.store.Set(parts[1], store.Int{Value: n})
		return
	}
	i.store.Set(parts[1], store.Text{Value: text})
}

// GOTO <label>
// Runs the paragraph inline; control returns to the next statement.
func (i *Interpreter) execGoto(line string) {
	parts := strings.Fields(clean(line))
	if len(parts) < 2 {
		return
	}
	if body, ok := i.paragraphs[strings.ToUpper(parts[1])]; ok {
		i.execBlock(body)
	}
}

// PERFORM <label> [UNTIL <condition>]
// UNTIL has repeat-until semantics: the body runs at least once, then
// repeats while the condition is false and the run-flag is still set.
func (i *Interpreter) execPerform(line string) {
	cleaned := clean(line)
	parts := strings.Fields(cleaned)
	if len(parts) < 2 {
		return
	}
	body, ok := i.paragraphs[strings.ToUpper(parts[1])]
	if !ok {
		return
	}
	if idx := strings.Index(strings.ToUpper(cleaned), "UNTIL"); idx >= 0 {
		condition := strings.TrimSpace(cleaned[idx+len("UNTIL"):])
		for {
			i.execBlock(body)
			if i.evalCondition(condition) || !i.running {
				return
			}
		}
	}
	i.execBlock(body)
}

// IF <condition> ... [ELSE ...] END-IF
// Consumes lines from the enclosing cursor up to the matching END-IF,
// evaluates the condition once, and runs exactly one branch.
func (i *Interpreter) execIf(line string, cur *cursor) {
	condition := strings.TrimSpace(line[len("IF"):])
	trueBranch, falseBranch := collectIf(cur)
	if i.evalCondition(condition) {
		i.execBlock(trueBranch)
		return
	}
	i.execBlock(falseBranch)
}

// collectIf gathers the two branches. Nested IFs are tracked by depth
// so only the matching ELSE/END-IF split and close this construct.
func collectIf(cur *cursor) (trueBranch, falseBranch []string) {
	branch := &trueBranch
	depth := 0
	for {
		line, ok := cur.next()
		if !ok {
			return
		}
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "END-IF"):
			if depth == 0 {
				return
			}
			depth--
		case strings.HasPrefix(upper, "IF"):
			depth++
		case strings.HasPrefix(upper, "ELSE") && depth == 0:
			branch = &falseBranch
			continue
		}
		*branch = append(*branch, line)
	}
}

// EVALUATE <expression> (WHEN <value> ...)* [WHEN OTHER ...] END-EVALUATE
type whenBranch struct {
	value string // raw WHEN token; "OTHER" is the unconditional sentinel
	lines []string
}

// execEvaluate consumes the branch list from the enclosing cursor,
// evaluates the subject once, and runs the first matching branch.
// Unmatched subjects execute nothing.
func (i *Interpreter) execEvaluate(line string, cur *cursor) {
	subject := strings.TrimSpace(line[len("EVALUATE"):])
	branches := collectEvaluate(cur)

	val, err := expr.Eval(subject, i.store)
	text := subject
	if err == nil {
		text = strconv.Itoa(val)
	}

	for _, b := range branches {
		w := strings.TrimSpace(b.value)
		var matched bool
		switch {
		case strings.EqualFold(w, "OTHER"):
			matched = true
		case intLiteral.MatchString(w):
			n, _ := strconv.Atoi(w)
			matched = err == nil && n == val
		case isQuoted(w):
			matched = w[1:len(w)-1] == text
		default:
			matched = strings.EqualFold(w, text)
		}
		if matched {
			i.execBlock(b.lines)
			return
		}
	}
}

// collectEvaluate gathers the ordered WHEN branches up to the matching
// END-EVALUATE; nested EVALUATEs are tracked by depth. Lines before the
// first WHEN are dropped.
func collectEvaluate(cur *cursor) []whenBranch {
	var branches []whenBranch
	var current *whenBranch
	depth := 0
	for {
		line, ok := cur.next()
		if !ok {
			break
		}
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "END-EVALUATE"):
			if depth == 0 {
				if current != nil {
					branches = append(branches, *current)
				}
				return branches
			}
			depth--
		case strings.HasPrefix(upper, "EVALUATE"):
			depth++
		case depth == 0 && strings.HasPrefix(upper, "WHEN "):
			if current != nil {
				branches = append(branches, *current)
			}
			current = &whenBranch{value: strings.TrimSpace(line[len("WHEN "):])}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		}
	}
	if current != nil {
		branches = append(branches, *current)
	}
	return branches
}
