// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash is never rendered to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
