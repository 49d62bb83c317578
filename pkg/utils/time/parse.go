// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles various timestamp formats found in stored content

package time

import (
	"strings"
	"time"
)

// Timestamp formats accepted for stored publish dates
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime attempts to parse a time string using various formats
func ParseFlexibleTime(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}

	// Clean up the time string
	timeStr = strings.TrimSpace(timeStr)

	// Try each format
	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}
