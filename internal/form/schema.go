package form

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Messages maps a validator tag ("required", "email", "min") to the text
// shown next to the field.
type Messages map[string]string

// Errors maps a field name to the message of its first failing rule.
type Errors map[string]string

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

type rule struct {
	field    string
	tags     string
	messages Messages
}

// Schema is a static, declarative rule set for one form.
type Schema struct {
	name  string
	rules []rule
}

// NewSchema starts an empty schema.
func NewSchema(name string) *Schema {
	return &Schema{name: name}
}

// Field adds a field with validator tags (e.g. "required,email") and the
// message for each tag. Rules within a field run in tag order.
func (s *Schema) Field(name, tags string, messages Messages) *Schema {
	s.rules = append(s.rules, rule{field: name, tags: tags, messages: messages})
	return s
}

// Name identifies the form in logs and metrics.
func (s *Schema) Name() string { return s.name }

// Fields lists the schema's fields in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r.field)
	}
	return out
}

// Validate checks every field independently and returns all failures at
// once. A nil result means the values are valid.
func (s *Schema) Validate(values Values) Errors {
	var errs Errors
	for _, r := range s.rules {
		msg, ok := r.check(values.Get(r.field))
		if ok {
			continue
		}
		if errs == nil {
			errs = make(Errors)
		}
		errs[r.field] = msg
	}
	return errs
}

func (r rule) check(value string) (string, bool) {
	err := validate.Var(value, r.tags)
	if err == nil {
		return "", true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := r.messages[verrs[0].Tag()]; ok {
			return msg, false
		}
		return "Invalid " + r.field, false
	}
	// InvalidValidationError means the tags themselves are broken.
	panic("form: bad rule for field " + r.field + ": " + err.Error())
}
