package ui

import (
	"strings"

	"github.com/Goofygiraffe06/barber/internal/form"
)

// Field is the view model of one input with an optional leading icon and
// an optional error indicator.
type Field struct {
	Name         string
	Type         string
	Placeholder  string
	Autocomplete string
	Icon         string
	Value        string
	Error        string
	State        form.FieldState
}

// Classes returns the container classes for the field state.
func (f Field) Classes() string {
	classes := []string{"field"}
	if f.State.Errored {
		classes = append(classes, "is-errored")
	}
	if f.State.Focused {
		classes = append(classes, "is-focused")
	}
	if f.State.Filled {
		classes = append(classes, "is-filled")
	}
	return strings.Join(classes, " ")
}

// HasError reports whether the alert indicator is shown.
func (f Field) HasError() bool { return f.Error != "" }

// bind fills value, error and state from a submission. Passwords are never
// echoed back.
func (f Field) bind(values form.Values, errs form.Errors) Field {
	if f.Type != "password" {
		f.Value = values.Get(f.Name)
	}
	f.Error = errs[f.Name]
	if values != nil {
		f.State = form.Settled(f.Value, f.Error)
	}
	return f
}

// Button is the styled submit control.
type Button struct {
	Label string
	Type  string
}
