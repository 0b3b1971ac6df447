package services

import (
	"fmt"
	"sort"
	"strings"

	"leadrelay/pkg/models"
)

// buildSubject combines the configured prefix, the lead's name and,
// when present, the city in parentheses.
func buildSubject(prefix string, l models.Lead) string {
	name := l.Name
	if name == "" {
		name = "New Lead"
	}
	subject := fmt.Sprintf("%s: %s", prefix, name)
	if l.City != "" {
		subject += fmt.Sprintf(" (%s)", l.City)
	}
	return subject
}

// buildEmailText renders the plain-text notification body. Name is
// always listed (with a placeholder when empty); the other known
// fields are listed only when set. Unrecognized fields follow in a
// sorted "Extra fields" block so nothing submitted is lost.
func buildEmailText(l models.Lead) string {
	lines := []string{}

	name := l.Name
	if name == "" {
		name = "-"
	}
	lines = append(lines, "Name: "+name)
	if l.Email != "" {
		lines = append(lines, "Email: "+l.Email)
	}
	if l.Phone != "" {
		lines = append(lines, "Phone: "+l.Phone)
	}
	if l.City != "" {
		lines = append(lines, "City: "+l.City)
	}
	if l.Message != "" {
		lines = append(lines, "Notes: "+l.Message)
	}

	if len(l.Extras) > 0 {
		keys := make([]string, 0, len(l.Extras))
		for k := range l.Extras {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines = append(lines, "", "Extra fields:")
		for _, k := range keys {
			lines = append(lines, k+": "+l.Extras[k])
		}
	}

	return strings.Join(lines, "\n")
}
