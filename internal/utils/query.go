package utils

import (
	"errors"
	"strconv"
)

// ParsePage reads a page number the way browsers' parseInt does: optional
// leading spaces and sign, then the longest run of digits. Anything that does
// not yield an integer >= 1 becomes 1. Positive values too large for int
// saturate at the maximum int so they still point past the data.
func ParsePage(raw string) int {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
		i++
	}
	start := i
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	digits := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == digits {
		return 1
	}
	n, err := strconv.Atoi(raw[start:i])
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return n
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}
