package source

import "testing"

var program = []string{
	"IDENTIFICATION DIVISION.",
	"PROGRAM-ID. PAYROLL.",
	"* a comment line",
	"DATA DIVISION.",
	"WORKING-STORAGE SECTION.",
	"01 X PIC 9(3).",
	"01 MSG PIC X(10).",
	"",
	"01 BROKEN-LINE",
	"PROCEDURE DIVISION.",
	"    MOVE 10 TO X.",
	"    PERFORM SHOW.",
	"SHOW.",
	"    DISPLAY X.",
	"    DISPLAY MSG.",
	"FINISH.",
	"    STOP RUN.",
}

func TestParseDeclarations(t *testing.T) {
	prog := Parse(program)

	tests := []struct {
		name    string
		numeric bool
		length  int
	}{
		{"X", true, 3},
		{"MSG", false, 10},
	}

	if len(prog.Declarations) != len(tests) {
		t.Fatalf("declaration count wrong. expected=%d, got=%d",
			len(tests), len(prog.Declarations))
	}
	for i, tt := range tests {
		d := prog.Declarations[i]
		if d.Name != tt.name {
			t.Fatalf("tests[%d] - name wrong. expected=%q, got=%q", i, tt.name, d.Name)
		}
		if d.Pic.Numeric != tt.numeric || d.Pic.Length != tt.length {
			t.Fatalf("tests[%d] - spec wrong. got=%+v", i, d.Pic)
		}
	}
}

func TestParseParagraphs(t *testing.T) {
	prog := Parse(program)

	show, ok := prog.Paragraphs["SHOW"]
	if !ok {
		t.Fatalf("paragraph SHOW missing. got=%v", prog.Paragraphs)
	}
	if len(show) != 2 || show[0] != "DISPLAY X." || show[1] != "DISPLAY MSG." {
		t.Fatalf("SHOW body wrong. got=%v", show)
	}

	finish, ok := prog.Paragraphs["FINISH"]
	if !ok {
		t.Fatalf("paragraph FINISH missing")
	}
	if len(finish) != 1 || finish[0] != "STOP RUN." {
		t.Fatalf("FINISH body wrong. got=%v", finish)
	}
}

func TestParseBody(t *testing.T) {
	prog := Parse(program)

	// The body keeps every procedure line, paragraph labels included.
	expected := []string{
		"MOVE 10 TO X.",
		"PERFORM SHOW.",
		"SHOW.",
		"DISPLAY X.",
		"DISPLAY MSG.",
		"FINISH.",
		"STOP RUN.",
	}
	if len(prog.Body) != len(expected) {
		t.Fatalf("body length wrong. expected=%d, got=%d (%v)",
			len(expected), len(prog.Body), prog.Body)
	}
	for i, line := range expected {
		if prog.Body[i] != line {
			t.Fatalf("body[%d] wrong. expected=%q, got=%q", i, line, prog.Body[i])
		}
	}
}

func TestParseProgramID(t *testing.T) {
	prog := Parse(program)
	if prog.ID != "PAYROLL" {
		t.Fatalf("program id wrong. expected=%q, got=%q", "PAYROLL", prog.ID)
	}

	empty := Parse([]string{"PROCEDURE DIVISION.", "STOP RUN."})
	if empty.ID != "" {
		t.Fatalf("missing PROGRAM-ID should give empty id, got=%q", empty.ID)
	}
}

func TestParseLeniency(t *testing.T) {
	prog := Parse([]string{
		"DATA DIVISION.",
		"WORKING-STORAGE SECTION.",
		"garbage without a picture clause",
		"PIC 9(3).",
		"PROCEDURE DIVISION.",
	})
	// The bare PIC line has no identifier token before the clause.
	if len(prog.Declarations) != 0 {
		t.Fatalf("malformed declarations should be dropped. got=%v", prog.Declarations)
	}
	if len(prog.Body) != 0 || len(prog.Paragraphs) != 0 {
		t.Fatalf("empty procedure should stay empty. body=%v paragraphs=%v",
			prog.Body, prog.Paragraphs)
	}
}
