package form

import (
	"net/http"
	"strings"
)

// Field names shared by the sign-in and sign-up forms.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Values is the flat field name -> value mapping of one submission.
type Values map[string]string

// Get returns the value for field, or "" when absent.
func (v Values) Get(field string) string {
	if v == nil {
		return ""
	}
	return v[field]
}

// Without returns a copy that omits the given fields. Used to avoid echoing
// secrets back into a re-rendered page.
func (v Values) Without(fields ...string) Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// FromRequest reads the named fields from a parsed form body. Name and email
// are trimmed and the email lower-cased; passwords are kept verbatim.
func FromRequest(r *http.Request, fields ...string) (Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	values := make(Values, len(fields))
	for _, f := range fields {
		values[f] = normalize(f, r.PostForm.Get(f))
	}
	return values, nil
}

func normalize(field, raw string) string {
	switch field {
	case FieldEmail:
		return strings.ToLower(strings.TrimSpace(raw))
	case FieldName:
		return strings.TrimSpace(raw)
	default:
		return raw
	}
}
