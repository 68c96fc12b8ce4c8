// Package duration parses the ISO-8601 duration subset the recipe feed
// uses: an optional hours component and an optional minutes component after
// the "PT" marker, e.g. "PT1H30M".
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a duration component whose magnitude could not be read
// as a non-negative integer.
type ParseError struct {
	Input     string
	Component string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("duration: invalid component %q in %q", e.Component, e.Input)
}

// ParseMinutes converts a duration string into whole minutes.
//
// A string without the "PT" marker means "no duration specified" and parses
// to 0. After the marker an hours component terminated by 'H' and a minutes
// component terminated by 'M' are recognized, in that order, each optional.
// Seconds, days and fractional values are not part of the feed's vocabulary
// and fall through unmatched. A unit marker with an empty or non-numeric
// magnitude returns a *ParseError; upstream data is not guaranteed clean, so
// callers recover from it instead of aborting the run.
func ParseMinutes(s string) (int, error) {
	_, rest, found := strings.Cut(s, "PT")
	if !found {
		return 0, nil
	}

	hours, rest, err := component(s, rest, 'H')
	if err != nil {
		return 0, err
	}
	minutes, _, err := component(s, rest, 'M')
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// component reads the integer terminated by marker and returns the remainder
// after it. A missing marker yields 0 with the input unchanged.
func component(input, s string, marker byte) (int, string, error) {
	i := strings.IndexByte(s, marker)
	if i < 0 {
		return 0, s, nil
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n < 0 {
		return 0, "", &ParseError{Input: input, Component: s[:i+1]}
	}
	return n, s[i+1:], nil
}
