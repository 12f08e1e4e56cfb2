package store

import (
	"testing"

	"cobolt/pkg/picture"
)

func TestTextCoercion(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"HI", "HI   "},
		{"HELLO", "HELLO"},
		{"HELLO WORLD", "HELLO"},
		{"", "     "},
	}

	for i, tt := range tests {
		s := New()
		s.Declare("MSG", picture.Spec{Numeric: false, Length: 5})
		s.Set("MSG", Text{Value: tt.in})
		got := s.Get("MSG").Display()
		if got != tt.expected {
			t.Fatalf("tests[%d] - stored value wrong. expected=%q, got=%q", i, tt.expected, got)
		}
		if len(got) != 5 {
			t.Fatalf("tests[%d] - width wrong. expected=5, got=%d", i, len(got))
		}
	}
}

func TestNumericCoercion(t *testing.T) {
	s := New()
	s.Declare("X", picture.Spec{Numeric: true, Length: 3})

	s.Set("X", Text{Value: "42"})
	if v, ok := s.Get("X").(Int); !ok || v.Value != 42 {
		t.Fatalf("numeric parse wrong. got=%#v", s.Get("X"))
	}

	s.Set("X", Text{Value: "NOT-A-NUMBER"})
	if v, ok := s.Get("X").(Int); !ok || v.Value != 0 {
		t.Fatalf("parse failure should store 0. got=%#v", s.Get("X"))
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	s := New()
	s.Set("counter", Int{Value: 7})
	if v, ok := s.Get("COUNTER").(Int); !ok || v.Value != 7 {
		t.Fatalf("uppercase lookup wrong. got=%#v", s.Get("COUNTER"))
	}
	if v, ok := s.Get("Counter").(Int); !ok || v.Value != 7 {
		t.Fatalf("mixed-case lookup wrong. got=%#v", s.Get("Counter"))
	}
}

func TestUndeclaredDefaults(t *testing.T) {
	s := New()
	if v, ok := s.Get("NEVER-SET").(Int); !ok || v.Value != 0 {
		t.Fatalf("undeclared read should be integer 0. got=%#v", s.Get("NEVER-SET"))
	}
	if s.Has("NEVER-SET") {
		t.Fatalf("Has should be false before any write")
	}

	// Untyped slots store verbatim, no width discipline.
	s.Set("FREE", Text{Value: "anything at all"})
	if got := s.Get("FREE").Display(); got != "anything at all" {
		t.Fatalf("untyped write changed value. got=%q", got)
	}
}

func TestLookup(t *testing.T) {
	s := New()
	s.Set("N", Int{Value: 12})
	s.Set("T", Text{Value: " 34 "})
	s.Set("W", Text{Value: "words"})

	tests := []struct {
		name     string
		expected int
	}{
		{"N", 12},
		{"T", 34},
		{"W", 0},
		{"MISSING", 0},
	}
	for i, tt := range tests {
		if got := s.Lookup(tt.name); got != tt.expected {
			t.Fatalf("tests[%d] %s - expected=%d, got=%d", i, tt.name, tt.expected, got)
		}
	}
}
