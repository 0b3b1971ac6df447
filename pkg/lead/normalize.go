package lead

import (
	"strings"

	"leadrelay/pkg/models"
)

// slot identifies one of the canonical lead fields.
type slot int

const (
	slotName slot = iota
	slotEmail
	slotPhone
	slotCity
	slotMessage
	slotWebsite
)

// aliasTable lists, per slot and in priority order, the accepted
// field-name spellings. Form markup across the site's pages is
// inconsistent about casing and synonyms, so every spelling is listed
// literally; matching is exact, not case-folded.
var aliasTable = []struct {
	slot    slot
	aliases []string
}{
	{slotName, []string{"name", "Name", "full_name", "FullName"}},
	{slotEmail, []string{"email", "Email"}},
	{slotPhone, []string{"phone", "Phone", "tel", "Tel", "telephone", "Telephone"}},
	{slotCity, []string{"city", "City", "town", "Town"}},
	{slotMessage, []string{"message", "Message", "notes", "Notes", "note", "Note"}},
	{slotWebsite, []string{"website", "Website", "url", "URL"}},
}

// pickFirst returns the first non-empty trimmed value among keys.
func pickFirst(data models.RawSubmission, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(data[k]); v != "" {
			return v
		}
	}
	return ""
}

// Normalize maps a raw submission onto a canonical Lead. Every field
// not claimed by a slot's alias list is preserved in Extras with a
// trimmed value (empty values skipped) so that nothing submitted is
// silently dropped from the delivered email.
func Normalize(raw models.RawSubmission) models.Lead {
	var l models.Lead

	claimed := make(map[string]bool)
	for _, entry := range aliasTable {
		v := pickFirst(raw, entry.aliases)
		switch entry.slot {
		case slotName:
			l.Name = v
		case slotEmail:
			l.Email = v
		case slotPhone:
			l.Phone = v
		case slotCity:
			l.City = v
		case slotMessage:
			l.Message = v
		case slotWebsite:
			l.Website = v
		}
		for _, a := range entry.aliases {
			claimed[a] = true
		}
	}

	l.Extras = make(map[string]string)
	for k, v := range raw {
		if claimed[k] {
			continue
		}
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			l.Extras[k] = trimmed
		}
	}

	return l
}
