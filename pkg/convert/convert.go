// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package convert provides quick type-conversion utilities.

It wraps standards like [strconv] to provide fault-tolerant conversions
(e.g., returning 0 instead of an error when string parsing fails). This is highly
useful in API handler contexts parsing query parameters.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {

	// If the string is empty, return 0
	if s == "" {
		return 0
	}

	// Try to parse the string as an integer
	v, _ := strconv.Atoi(s)

	return v
}

// ToIntClamped converts a string to an integer bounded to [1, max].
// Empty, malformed, or out-of-range values fall back to def.
func ToIntClamped(s string, def, max int) int {
	v := ToInt(s)
	if v < 1 || v > max {
		return def
	}
	return v
}
