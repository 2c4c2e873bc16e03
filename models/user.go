package models

import "time"

// User represents an operator account used for authentication.
// It is independent of the Client/Project domain data.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier. Matching is exact and
	// case-sensitive.
	Username string `json:"username"`

	// PasswordHash is the self-describing password digest (algorithm tag,
	// parameters, salt, digest). Never the plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
