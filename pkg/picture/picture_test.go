package picture

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		pic     string
		numeric bool
		length  int
	}{
		{"9(3)", true, 3},
		{"X(10)", false, 10},
		{"999", true, 3},
		{"X", false, 1},
		{"9", true, 1},
		{"XX(4)", false, 5},
		{"9(2)9", true, 3},
		{"x(5)", false, 5},
	}

	for i, tt := range tests {
		spec := Parse(tt.pic)
		if spec.Numeric != tt.numeric {
			t.Fatalf("tests[%d] %q - numeric wrong. expected=%t, got=%t",
				i, tt.pic, tt.numeric, spec.Numeric)
		}
		if spec.Length != tt.length {
			t.Fatalf("tests[%d] %q - length wrong. expected=%d, got=%d",
				i, tt.pic, tt.length, spec.Length)
		}
	}
}
