package duration

import (
	"errors"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"PT1H30M", 90},
		{"PT45M", 45},
		{"PT2H", 120},
		{"PT0H0M", 0},
		{"PT", 0},
		{"", 0},
		{"45 minutes", 0}, // no PT marker: no duration specified
		{"PT90S", 0},      // seconds are not recognized
		{"PT1H30S", 60},   // trailing seconds ignored
		{"PT10H5M", 605},
	}

	for _, tc := range testCases {
		got, err := ParseMinutes(tc.input)
		if err != nil {
			t.Errorf("ParseMinutes(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tc.input, got, tc.expected)
		}
	}
}

func TestParseMinutesMalformed(t *testing.T) {
	testCases := []string{
		"PTH",     // empty hours magnitude
		"PTM",     // empty minutes magnitude
		"PT1HM",   // empty minutes after valid hours
		"PTxH",    // non-numeric hours
		"PT1.5H",  // fractional magnitude
		"PT30M1H", // out of order: "30M1" is not an hours magnitude
	}

	for _, input := range testCases {
		got, err := ParseMinutes(input)
		if err == nil {
			t.Errorf("ParseMinutes(%q) = %d, want ParseError", input, got)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseMinutes(%q) error = %T, want *ParseError", input, err)
			continue
		}
		if perr.Input != input {
			t.Errorf("ParseMinutes(%q) ParseError.Input = %q", input, perr.Input)
		}
	}
}

func TestParseMinutesDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		got, err := ParseMinutes("PT1H30M")
		if err != nil || got != 90 {
			t.Fatalf("ParseMinutes(PT1H30M) = %d, %v on call %d", got, err, i+1)
		}
	}
}
