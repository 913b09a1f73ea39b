package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrInvalidSubmission is returned for bodies that are not JSON or are a
// bare scalar such as a string, number or null.
var ErrInvalidSubmission = errors.New("invalid contact submission body")

// FormField is a free-text form value. It accepts any JSON value so that a
// client sending a number or an object still gets its submission relayed.
type FormField string

// UnmarshalJSON keeps strings as-is, maps null to empty text and renders any
// other value as its raw JSON.
func (f *FormField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FormField(s)
		return nil
	}
	*f = FormField(trimmed)
	return nil
}

func (f FormField) String() string { return string(f) }

// ContactSubmission is the body of POST /send-email
type ContactSubmission struct {
	Name     FormField `json:"name"`
	Email    FormField `json:"email"`
	WhatsApp FormField `json:"whatsapp"`
	Message  FormField `json:"message"`
}

// ContactResponse is returned for every outcome of a submission
type ContactResponse struct {
	Message string `json:"message"`
}

// DecodeContactSubmission parses a request body. An empty body or an array
// yields a submission with blank fields.
func DecodeContactSubmission(body []byte) (ContactSubmission, error) {
	var sub ContactSubmission
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return sub, nil
	}
	if !json.Valid(trimmed) {
		return sub, ErrInvalidSubmission
	}
	switch trimmed[0] {
	case '{':
		if err := json.Unmarshal(trimmed, &sub); err != nil {
			return ContactSubmission{}, errors.Join(ErrInvalidSubmission, err)
		}
		return sub, nil
	case '[':
		return sub, nil
	default:
		return sub, ErrInvalidSubmission
	}
}
