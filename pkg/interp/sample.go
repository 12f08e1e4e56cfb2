package interp

// Demo is the built-in sample program, run by the CLI when no source
// file is given.
var Demo = []string{
	"IDENTIFICATION DIVISION.",
	"PROGRAM-ID. HELLO.",
	"DATA DIVISION.",
	"WORKING-STORAGE SECTION.",
	"01 X PIC 9(3).",
	"PROCEDURE DIVISION.",
	"    MOVE 10 TO X.",
	"    ADD 5 TO X.",
	"    SUBTRACT 2 FROM X.",
	"    DISPLAY X.",
	"    MOVE 'HELLO' TO MSG.",
	"    DISPLAY 'Message:'",
	"    DISPLAY MSG.",
	"    STOP RUN.",
}
