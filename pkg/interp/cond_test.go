package interp

import (
	"testing"

	"cobolt/pkg/store"
)

func TestEvalCondition(t *testing.T) {
	i := New()
	i.store.Set("X", store.Int{Value: 10})
	i.store.Set("MSG", store.Text{Value: "HI"})

	tests := []struct {
		condition string
		expected  bool
	}{
		{"X = 10", true},
		{"X <> 10", false},
		{"X > 9", true},
		{"X < 9", false},
		{"X >= 10", true},
		{"X <= 9", false},
		{"10 > 9", true},
		{"MSG = HI", true},
		{"MSG <> HI", false},
		{"ABC < ABD", true},
		{"MSG > HA", true},
		{"X >", false},     // fewer than three tokens
		{"X ?? 10", false}, // unknown operator
		{"", false},
	}

	for n, tt := range tests {
		if got := i.evalCondition(tt.condition); got != tt.expected {
			t.Fatalf("tests[%d] %q - expected=%t, got=%t", n, tt.condition, tt.expected, got)
		}
	}
}
