package interp

import (
	"strconv"
	"strings"

	"cobolt/pkg/store"
)

// evalCondition evaluates the fixed three-token form
// <left> <operator> <right> with operator one of = <> > < >= <=.
// Integer pairs compare numerically, everything else as text.
// Malformed conditions are false rather than errors.
func (i *Interpreter) evalCondition(condition string) bool {
	parts := strings.Fields(condition)
	if len(parts) < 3 {
		return false
	}
	left := i.condOperand(parts[0])
	right := i.condOperand(parts[2])
	op := parts[1]

	li, lok := left.(store.Int)
	ri, rok := right.(store.Int)
	if lok && rok {
		switch op {
		case "=":
			return li.Value == ri.Value
		case "<>":
			return li.Value != ri.Value
		case ">":
			return li.Value > ri.Value
		case "<":
			return li.Value < ri.Value
		case ">=":
			return li.Value >= ri.Value
		case "<=":
			return li.Value <= ri.Value
		}
		return false
	}

	ls, rs := left.Display(), right.Display()
	switch op {
	case "=":
		return ls == rs
	case "<>":
		return ls != rs
	case ">":
		return ls > rs
	case "<":
		return ls < rs
	case ">=":
		return ls >= rs
	case "<=":
		return ls <= rs
	}
	return false
}

// condOperand resolves one comparison operand: variable lookup first,
// else integer literal, else the bare token as text.
func (i *Interpreter) condOperand(token string) store.Value {
	if i.store.Has(token) {
		return i.store.Get(token)
	}
	if intLiteral.MatchString(token) {
		n, _ := strconv.Atoi(token)
		return store.Int{Value: n}
	}
	return store.Text{Value: token}
}
