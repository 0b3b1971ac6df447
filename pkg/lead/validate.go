package lead

import "leadrelay/pkg/models"

// Validation failure messages are part of the external contract; the
// site's form pages display them verbatim.
const (
	MsgMissingContact = "Missing required fields: name and (email or phone)."
	MsgMissingMessage = "Missing required fields: message."
)

// ValidationError reports an incomplete lead.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsSpam reports whether the honeypot field was filled in. Humans
// never see the website field; any value means an automated submitter.
func IsSpam(l models.Lead) bool {
	return l.Website != ""
}

// Validate checks the minimal completeness contract: a name plus at
// least one way to reach the lead back. requireMessage additionally
// demands a non-empty message; historical form variants disagree on
// this, so it is a policy knob rather than a rule.
func Validate(l models.Lead, requireMessage bool) error {
	if l.Name == "" || (l.Email == "" && l.Phone == "") {
		return &ValidationError{Message: MsgMissingContact}
	}
	if requireMessage && l.Message == "" {
		return &ValidationError{Message: MsgMissingMessage}
	}
	return nil
}
