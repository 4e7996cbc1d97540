package mapstyle

import (
	"slices"
	"testing"
)

func TestParseDash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"empty", "", nil},
		{"simple", "5,3", []float64{5, 3}},
		{"single", "4", []float64{4}},
		{"spaces", " 10, 5 ,2,5", []float64{10, 5, 2, 5}},
		{"negative takes absolute", "-5,3", []float64{5, 3}},
		{"all zero is no dash", "0,0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDash(tt.input)
			if err != nil {
				t.Fatalf("parseDash(%q) error: %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseDash(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDashInvalid(t *testing.T) {
	for _, input := range []string{"a", "5,b", "5;3"} {
		if _, err := parseDash(input); err == nil {
			t.Errorf("parseDash(%q) = nil error, want error", input)
		}
	}
}

func TestScaleDash(t *testing.T) {
	in := []float64{5, 3}
	got := scaleDash(in, 2)
	if !slices.Equal(got, []float64{10, 6}) {
		t.Errorf("scaleDash = %v, want [10 6]", got)
	}
	// Input must stay untouched.
	if !slices.Equal(in, []float64{5, 3}) {
		t.Errorf("scaleDash modified its input: %v", in)
	}
	if scaleDash(nil, 2) != nil {
		t.Error("scaleDash(nil) should be nil")
	}
}
