package models

// RawSubmission is the flat field set decoded from a request body,
// keyed by the field name exactly as submitted. File parts are
// represented by the FilePlaceholder value, never their contents.
type RawSubmission map[string]string

// FilePlaceholder stands in for non-text form parts.
const FilePlaceholder = "[file]"

// Lead is the canonical form of a contact submission after field-name
// normalization. Optional fields are empty strings when absent.
type Lead struct {
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	City    string            `json:"city"`
	Message string            `json:"message"`
	Website string            `json:"website"` // honeypot, empty for legitimate submissions
	Extras  map[string]string `json:"extras"`
}

// Result is the outcome of running one submission through the
// pipeline. It is never persisted; it only shapes the HTTP response.
type Result struct {
	OK     bool
	Status int    // HTTP status class to answer with
	Error  string // short user-visible message when !OK
	Detail string // provider response body or fault detail, may be empty
	ID     string // provider message id on delivery success
	Ref    string // per-submission reference for log correlation
}
