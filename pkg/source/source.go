// Package source splits raw COBOL program text into its structural
// parts: working-storage declarations, named paragraphs, and the
// top-level procedure body. Unrecognized lines are dropped silently;
// this leniency is deliberate for a teaching interpreter and no
// structural errors are reported.
package source

import (
	"regexp"
	"strings"

	"cobolt/pkg/picture"
)

// Declaration is one working-storage variable with its picture spec.
type Declaration struct {
	Name string
	Pic  picture.Spec
}

// Program is the structured form of one source text.
type Program struct {
	// ID is the PROGRAM-ID name, empty when the source has none.
	ID           string
	Declarations []Declaration
	// Paragraphs maps uppercase labels to their raw statement lines.
	Paragraphs map[string][]string
	// Body is every procedure-division line in order, paragraph labels
	// included; it is the default entry sequence for a run.
	Body []string
}

var (
	picClause = regexp.MustCompile(`(?i)PIC\s+([9X][^\s.]*)`)
	label     = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// Parse structures the program text.
func Parse(lines []string) *Program {
	return &Program{
		ID:           scanProgramID(lines),
		Declarations: scanDeclarations(lines),
		Paragraphs:   scanParagraphs(lines),
		Body:         extractBody(lines),
	}
}

// skippable lines never contribute structure: blanks and comments.
func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "*")
}

func scanProgramID(lines []string) string {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		up := strings.ToUpper(line)
		if !strings.HasPrefix(up, "PROGRAM-ID.") {
			continue
		}
		name := strings.TrimSpace(strings.TrimSuffix(line[len("PROGRAM-ID."):], "."))
		if name != "" {
			return strings.ToUpper(name)
		}
	}
	return ""
}

// scanDeclarations is active only between the WORKING-STORAGE SECTION
// marker of the DATA DIVISION and the start of the procedure division.
// The identifier is the last token before the PIC clause, so a level
// number (or any prefix token) is required.
func scanDeclarations(lines []string) []Declaration {
	var decls []Declaration
	inData, inWorking := false, false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if skippable(line) {
			continue
		}
		up := strings.ToUpper(line)
		if strings.HasPrefix(up, "DATA DIVISION") {
			inData = true
			continue
		}
		if !inData {
			continue
		}
		if strings.HasPrefix(up, "PROCEDURE DIVISION") {
			break
		}
		if strings.Contains(up, "WORKING-STORAGE SECTION") {
			inWorking = true
			continue
		}
		if !inWorking {
			continue
		}
		m := picClause.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		before := strings.Fields(line[:m[0]])
		if len(before) < 2 {
			continue
		}
		name := strings.ToUpper(strings.ReplaceAll(before[len(before)-1], ".", ""))
		decls = append(decls, Declaration{Name: name, Pic: picture.Parse(line[m[2]:m[3]])})
	}
	return decls
}

// scanParagraphs segments the procedure division. A line that is a bare
// uppercase label (letters, digits, hyphens) terminated by a period
// opens a new paragraph and closes the previous one; every other line
// accumulates into the open paragraph.
func scanParagraphs(lines []string) map[string][]string {
	paragraphs := make(map[string][]string)
	inProcedure := false
	current := ""
	var buffer []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if skippable(line) {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), "PROCEDURE DIVISION") {
			inProcedure = true
			continue
		}
		if !inProcedure {
			continue
		}
		if strings.HasSuffix(line, ".") {
			token := strings.TrimSpace(strings.TrimSuffix(line, "."))
			if label.MatchString(token) {
				if current != "" {
					paragraphs[current] = buffer
					buffer = nil
				}
				current = strings.ToUpper(token)
				continue
			}
		}
		if current != "" {
			buffer = append(buffer, line)
		}
	}
	if current != "" && len(buffer) > 0 {
		paragraphs[current] = buffer
	}
	return paragraphs
}

// extractBody collects every non-blank, non-comment procedure line in
// order, independent of paragraph boundaries.
func extractBody(lines []string) []string {
	var body []string
	inProcedure := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if skippable(line) {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), "PROCEDURE DIVISION") {
			inProcedure = true
			continue
		}
		if inProcedure {
			body = append(body, line)
		}
	}
	return body
}
