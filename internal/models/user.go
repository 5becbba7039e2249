package models

import "time"

// StoredUser is a user row including its bcrypt hash.
type StoredUser struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Public strips the hash.
func (u StoredUser) Public() User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
