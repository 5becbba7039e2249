// Package notify defines transient user notifications (toasts).
package notify

import "github.com/google/uuid"

// Kind selects the toast styling.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a transient message shown once and then expired by the page.
type Toast struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// New builds a toast with a fresh id.
func New(kind Kind, title, description string) Toast {
	return Toast{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
	}
}

// Notifier accepts toasts. Implementations must not block.
type Notifier interface {
	AddToast(t Toast)
}

// Recorder is a Notifier that keeps toasts in memory.
type Recorder struct {
	Toasts []Toast
}

func (r *Recorder) AddToast(t Toast) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.Toasts = append(r.Toasts, t)
}

// Count returns how many toasts of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, t := range r.Toasts {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
