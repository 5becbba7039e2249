package web

import (
	"net/http"

	"github.com/Goofygiraffe06/barber/internal/notify"
)

// responder is the per-request navigator and notifier handed to a flow. It
// records what the flow asked for; the handler turns that into a response
// once the flow returns.
type responder struct {
	route  string
	pushes int
	toasts []notify.Toast
}

func (r *responder) Push(route string) {
	r.route = route
	r.pushes++
}

func (r *responder) AddToast(t notify.Toast) {
	r.toasts = append(r.toasts, t)
}

func (r *responder) navigated() bool { return r.pushes > 0 }

// redirect answers 303 See Other so the browser follows with a GET.
func (r *responder) redirect(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, r.route, http.StatusSeeOther)
}
