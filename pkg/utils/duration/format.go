// ABOUTME: Duration formatting utilities for converting between different duration representations
// ABOUTME: Handles conversion from seconds to human-readable reading times

package duration

import (
	"fmt"
	"strings"
)

// SecondsToHumanReadable converts seconds to a human-readable format
func SecondsToHumanReadable(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour", hours))
		if hours > 1 {
			parts[len(parts)-1] += "s"
		}
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute", minutes))
		if minutes > 1 {
			parts[len(parts)-1] += "s"
		}
	}

	return strings.Join(parts, " ")
}
