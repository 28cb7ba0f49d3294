// Package domain contains core concepts of the message board.
// Users and messages are immutable once created.
package domain

import "time"

// User represents a registered account.
// The password hash is carried here for verification only and
// must never leave the service layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
