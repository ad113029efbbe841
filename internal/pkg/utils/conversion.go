// Package utils provides small helpers shared across handlers and commands.
package utils

import "strconv"

// ConvertToInt parses a decimal string and returns 0 when parsing fails.
func ConvertToInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}
