package form

// FieldState is the visual state of one input. It is owned by a single
// field and never shared.
type FieldState struct {
	Focused bool
	Filled  bool
	Errored bool
}

// Focus marks the field as focused.
func (s *FieldState) Focus() {
	s.Focused = true
}

// Blur clears focus and records whether the field holds a value.
func (s *FieldState) Blur(value string) {
	s.Focused = false
	s.Filled = value != ""
}

// Fail sets the errored flag from the message supplied by the parent form.
func (s *FieldState) Fail(message string) {
	s.Errored = message != ""
}

// Settled returns the state of a field after the user typed value and moved
// on, as seen by a page re-rendered after submission.
func Settled(value, errMessage string) FieldState {
	var s FieldState
	s.Focus()
	s.Blur(value)
	s.Fail(errMessage)
	return s
}
