package dataprocessing

import (
	"strconv"
	"strings"
)

// ParseRanking converts a ranking cell into a numeric rank.
//
// A plain integer ("42") is returned as is. A range ("1201-1400") yields the
// midpoint of its bounds using integer division. Empty cells, text, and
// ranges that do not have exactly two integer bounds report ok=false.
func ParseRanking(cell string) (rank int, ok bool) {
	if cell == "" {
		return 0, false
	}

	if strings.Contains(cell, "-") {
		parts := strings.Split(cell, "-")
		if len(parts) != 2 {
			return 0, false
		}
		low, err := parseRankPart(parts[0])
		if err != nil {
			return 0, false
		}
		high, err := parseRankPart(parts[1])
		if err != nil {
			return 0, false
		}
		// Both bounds are non-negative (a minus sign would be another split point),
		// so truncating division is floor division here.
		return (low + high) / 2, true
	}

	n, err := parseRankPart(cell)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseRankPart parses one integer, tolerating surrounding whitespace
func parseRankPart(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
