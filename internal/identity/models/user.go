// Package models holds the identity service's persisted entities.
package models

import "time"

// User is a registered credential. Email is unique; the hash and salt are
// base64 strings produced by the password package.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}
