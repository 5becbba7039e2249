// Package flow runs the submit, validate, call, navigate sequence of a form.
package flow

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Goofygiraffe06/barber/internal/form"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/notify"
)

// State of a flow instance.
type State int32

const (
	Editing State = iota
	Submitting
	NavigatedAway
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case NavigatedAway:
		return "navigated-away"
	default:
		return "unknown"
	}
}

var (
	// ErrSubmitInProgress is returned when Submit is called while an earlier
	// submission has not returned yet.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrFinished is returned when Submit is called after the flow navigated away.
	ErrFinished = errors.New("flow already navigated away")
)

// Action is the single external call made by a valid submission.
type Action func(ctx context.Context, values form.Values) error

// Navigator performs a client-side route change.
type Navigator interface {
	Push(route string)
}

// Recorder observes submission outcomes.
type Recorder interface {
	RecordInvalid(form string)
	RecordSuccess(form string, elapsed time.Duration)
	RecordFailure(form string, err error, elapsed time.Duration)
}

// Definition describes one form's flow. It is static and shared.
type Definition struct {
	Schema       *form.Schema
	Action       Action
	SuccessRoute string
	// SuccessToast is emitted after navigation when set.
	SuccessToast *notify.Toast
	FailureToast notify.Toast
}

// Result is what a Submit call left behind.
type Result struct {
	State  State
	Errors form.Errors
	// Route is the navigation target when State is NavigatedAway.
	Route string
	// Err is the rejected call's cause. It is never shown to the user.
	Err error
}

// Flow is one live form instance.
type Flow struct {
	def      Definition
	nav      Navigator
	notifier notify.Notifier
	recorder Recorder
	log      *zap.Logger

	mu    sync.Mutex
	state State
}

// Option configures a Flow.
type Option func(*Flow)

// WithRecorder attaches an outcome recorder (metrics).
func WithRecorder(r Recorder) Option { return func(f *Flow) { f.recorder = r } }

// New creates a flow in the Editing state.
func New(def Definition, nav Navigator, notifier notify.Notifier, opts ...Option) *Flow {
	f := &Flow{
		def:      def,
		nav:      nav,
		notifier: notifier,
		log:      logging.Named("flow").With(zap.String("form", def.Schema.Name())),
		state:    Editing,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates values and, when they pass, makes the external call.
// Validation failures keep the flow in Editing and make no call. Any call
// failure yields exactly one failure toast; success navigates exactly once.
func (f *Flow) Submit(ctx context.Context, values form.Values) (Result, error) {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return Result{State: Submitting}, ErrSubmitInProgress
	case NavigatedAway:
		f.mu.Unlock()
		return Result{State: NavigatedAway}, ErrFinished
	}

	if errs := f.def.Schema.Validate(values); errs != nil {
		f.mu.Unlock()
		f.log.Debug("validation failed", zap.Int("fields", len(errs)))
		if f.recorder != nil {
			f.recorder.RecordInvalid(f.def.Schema.Name())
		}
		return Result{State: Editing, Errors: errs}, nil
	}
	f.state = Submitting
	f.mu.Unlock()

	start := time.Now()
	err := f.def.Action(ctx, values)
	elapsed := time.Since(start)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = Editing
		f.log.Warn("submission failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		f.notifier.AddToast(fresh(f.def.FailureToast))
		if f.recorder != nil {
			f.recorder.RecordFailure(f.def.Schema.Name(), err, elapsed)
		}
		return Result{State: Editing, Err: err}, nil
	}

	f.state = NavigatedAway
	f.nav.Push(f.def.SuccessRoute)
	if f.def.SuccessToast != nil {
		f.notifier.AddToast(fresh(*f.def.SuccessToast))
	}
	f.log.Info("submission succeeded", zap.Duration("elapsed", elapsed))
	if f.recorder != nil {
		f.recorder.RecordSuccess(f.def.Schema.Name(), elapsed)
	}
	return Result{State: NavigatedAway, Route: f.def.SuccessRoute}, nil
}

// fresh copies a toast template under a new id.
func fresh(t notify.Toast) notify.Toast {
	return notify.New(t.Kind, t.Title, t.Description)
}
