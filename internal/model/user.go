package model

import "time"

// User is a minimal identity record. There is no authentication surface in
// this API — user ids are caller-supplied and trusted as-is.
//
// Password is stored exactly as given, with no hashing at this layer. That
// is unsafe for any real deployment; it is excluded from JSON output but
// otherwise left as the caller sent it.
//
// Username and email are intended to be unique but the repository does not
// enforce it on create (see DESIGN.md).
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertUser is the inbound payload for creating a user.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
