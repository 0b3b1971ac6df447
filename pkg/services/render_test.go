package services

import (
	"strings"
	"testing"

	"leadrelay/pkg/models"
)

func TestBuildSubject(t *testing.T) {
	tests := []struct {
		name string
		lead models.Lead
		want string
	}{
		{
			name: "name and city",
			lead: models.Lead{Name: "Jane Doe", City: "Ames"},
			want: "New Lead: Jane Doe (Ames)",
		},
		{
			name: "name only",
			lead: models.Lead{Name: "Jane Doe"},
			want: "New Lead: Jane Doe",
		},
		{
			name: "empty name falls back",
			lead: models.Lead{City: "Ames"},
			want: "New Lead: New Lead (Ames)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSubject("New Lead", tt.lead); got != tt.want {
				t.Errorf("buildSubject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEmailText(t *testing.T) {
	l := models.Lead{
		Name:    "Jane Doe",
		Phone:   "555-1234",
		Message: "Need a quote",
		Extras: map[string]string{
			"zeta":     "last",
			"alpha":    "first",
			"referrer": "google",
		},
	}

	got := buildEmailText(l)

	want := strings.Join([]string{
		"Name: Jane Doe",
		"Phone: 555-1234",
		"Notes: Need a quote",
		"",
		"Extra fields:",
		"alpha: first",
		"referrer: google",
		"zeta: last",
	}, "\n")

	if got != want {
		t.Errorf("buildEmailText() =\n%s\nwant:\n%s", got, want)
	}
}

// TestBuildEmailTextOmitsEmpty verifies empty optional fields are not
// listed, name keeps a placeholder, and no extras block appears when
// there are none.
func TestBuildEmailTextOmitsEmpty(t *testing.T) {
	got := buildEmailText(models.Lead{Email: "jane@x.com"})

	want := "Name: -\nEmail: jane@x.com"
	if got != want {
		t.Errorf("buildEmailText() = %q, want %q", got, want)
	}
	if strings.Contains(got, "Extra fields:") {
		t.Error("extras block rendered for empty extras")
	}
}
