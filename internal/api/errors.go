package api

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Error is a non-2xx response from the invoicing backend. Message carries
// the backend's "error" string when present; validation failures on create
// additionally carry per-field and per-item field errors.
type Error struct {
	StatusCode int
	Message    string

	// FieldErrors maps top-level payload fields to validation messages.
	FieldErrors map[string][]string
	// ItemErrors holds per-item field errors, indexed like the submitted
	// items list.
	ItemErrors []map[string][]string
}

func (e *Error) Error() string {
	return e.Message
}

// ItemError returns the first validation message for the given item index
// and field, or "" when absent.
func (e *Error) ItemError(idx int, field string) string {
	if idx < 0 || idx >= len(e.ItemErrors) {
		return ""
	}
	msgs := e.ItemErrors[idx][field]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// decodeError builds an Error from a non-2xx response body. The backend
// responds either with {"error": "..."} or, for create validation failures,
// with a per-field error map that may nest an "items" list.
func decodeError(status int, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Message:    fmt.Sprintf("request failed with status %d", status),
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return e
	}

	explicit := false
	for _, key := range []string{"error", "detail"} {
		var msg string
		if v, ok := raw[key]; ok && json.Unmarshal(v, &msg) == nil && msg != "" {
			e.Message = msg
			explicit = true
			break
		}
	}

	if v, ok := raw["items"]; ok {
		var items []map[string][]string
		if json.Unmarshal(v, &items) == nil {
			e.ItemErrors = items
		}
	}

	for key, v := range raw {
		if key == "error" || key == "detail" || key == "items" {
			continue
		}
		var msgs []string
		if json.Unmarshal(v, &msgs) == nil && len(msgs) > 0 {
			if e.FieldErrors == nil {
				e.FieldErrors = map[string][]string{}
			}
			e.FieldErrors[key] = msgs
		}
	}

	// Without an explicit error string, fall back to the first field error
	// so the user sees something actionable.
	if !explicit && len(e.FieldErrors) > 0 {
		keys := make([]string, 0, len(e.FieldErrors))
		for k := range e.FieldErrors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.Message = fmt.Sprintf("%s: %s", keys[0], e.FieldErrors[keys[0]][0])
	}

	return e
}
