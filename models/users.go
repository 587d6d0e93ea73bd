package models

import "time"

// User represents an artist in the system.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Login     string    `db:"login" json:"login"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// Genres holds the groups this user belongs to, populated on detail reads.
	Genres []UserGenre `db:"-" json:"genres,omitempty"`
}

// UserGenre is a group the user belongs to together with the id of the
// association row linking them, so views can offer per-association removal.
type UserGenre struct {
	Group
	AssignID int64 `db:"assign_id" json:"assignId"`
}

// CreateUserRequest carries the fields of the add-user form.
type CreateUserRequest struct {
	Login     string `json:"login"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateUserRequest carries the fields of the edit-user form. Login is
// immutable after creation; absent fields are left unchanged.
type UpdateUserRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
