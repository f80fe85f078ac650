package logger

import "strings"

// MaskEmail hides the local part of an address before it reaches the logs.
// Example: jane.doe@example.edu -> j***@example.edu
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	return username[:1] + "***@" + domain
}
