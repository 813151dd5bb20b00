package labreport

import "testing"

func TestParseValue(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  float64
		none  bool
	}{
		{name: "decimal point", input: "1.20", want: 1.20},
		{name: "decimal comma", input: "1,20", want: 1.20},
		{name: "integer", input: "140", want: 140},
		{name: "signed", input: "-0.5", want: -0.5},
		{name: "surrounding whitespace", input: " 4,6 ", want: 4.6},
		{name: "not a number", input: "abc", none: true},
		{name: "empty", input: "", none: true},
		{name: "two commas", input: "1,2,3", none: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseValue(tc.input)

			if tc.none {
				if ok {
					t.Fatalf("ParseValue(%q) = %v, want failure", tc.input, got)
				}
				return
			}

			if !ok {
				t.Fatalf("ParseValue(%q) failed, want %v", tc.input, tc.want)
			}
			if got != tc.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
