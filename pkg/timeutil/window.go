// Package timeutil parses calendar day windows such as "12", "12d" or "1w3d".
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitDays      = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseDays parses a human-friendly day window (for example "12", "2w" or
// "1w3d") into a number of calendar days. A bare number counts days.
func ParseDays(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("empty day window")
	}

	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 || matches[0] == "" {
			return 0, fmt.Errorf("invalid day window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid day window value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported day window unit %q", matches[2])
		}
		if value > (math.MaxInt-total)/per {
			return 0, fmt.Errorf("day window %q is too large", strings.TrimSpace(input))
		}
		total += value * per
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, fmt.Errorf("day window must be greater than zero")
	}
	return total, nil
}

// FormatDays renders n days using week and day tokens.
func FormatDays(n int) string {
	if n <= 0 {
		return "0d"
	}
	var parts []string
	if w := n / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := n % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
