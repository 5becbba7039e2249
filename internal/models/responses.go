package models

import "time"

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// User is the public view of an account. The password hash never leaves the store.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is returned by POST /sessions.
type SessionResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
