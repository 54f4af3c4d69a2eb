// Package models defines the persistent entities owned by the server.
package models

import "time"

// User is an account record. Email is stored lowercased and is unique
// across accounts. PasswordHash is a bcrypt digest; the plaintext never
// reaches storage.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
