package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"leadrelay/pkg/models"
)

// maxFormMemory bounds the in-memory portion of a multipart parse.
const maxFormMemory = 4 << 20

// DecodeError reports a request body that could not be turned into a
// field set. Message is safe to show to the caller.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeSubmission turns the request body into a flat field set,
// regardless of whether the client sent JSON, an urlencoded form or a
// multipart form. Unknown content types get one attempt at the
// urlencoded path before giving up — some of the site's older pages
// post without a content type at all.
func DecodeSubmission(r *http.Request) (models.RawSubmission, error) {
	ct := strings.ToLower(r.Header.Get("Content-Type"))

	switch {
	case strings.Contains(ct, "application/json"):
		return decodeJSONBody(r)
	case strings.Contains(ct, "multipart/form-data"):
		return decodeMultipartBody(r)
	case strings.Contains(ct, "application/x-www-form-urlencoded"):
		return decodeURLEncodedBody(r)
	default:
		out, err := decodeURLEncodedBody(r)
		if err != nil {
			return nil, &DecodeError{Message: "Unsupported Content-Type", Err: err}
		}
		return out, nil
	}
}

func decodeJSONBody(r *http.Request) (models.RawSubmission, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &DecodeError{Message: "Error reading request", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, &DecodeError{Message: "Invalid JSON body", Err: err}
	}

	out := models.RawSubmission{}
	for k, v := range doc {
		s, ok := stringifyJSONValue(v)
		if !ok {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}
	return out, nil
}

// stringifyJSONValue coerces a decoded JSON value to its string form.
// Nulls are dropped; arrays and objects keep their JSON encoding.
func stringifyJSONValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case nil:
		return "", false
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

func decodeMultipartBody(r *http.Request) (models.RawSubmission, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, &DecodeError{Message: "Invalid multipart body", Err: err}
	}

	out := models.RawSubmission{}
	// Repeated keys are last-write-wins; the normalizer only ever
	// consumes a single value per field.
	for k, vs := range r.MultipartForm.Value {
		if len(vs) > 0 {
			out[k] = strings.TrimSpace(vs[len(vs)-1])
		}
	}
	// File contents are never read or forwarded.
	for k, fs := range r.MultipartForm.File {
		if len(fs) > 0 {
			out[k] = models.FilePlaceholder
		}
	}
	return out, nil
}

func decodeURLEncodedBody(r *http.Request) (models.RawSubmission, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &DecodeError{Message: "Error reading request", Err: err}
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, &DecodeError{Message: "Invalid form body", Err: err}
	}

	out := models.RawSubmission{}
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = strings.TrimSpace(vs[len(vs)-1])
		}
	}
	return out, nil
}
