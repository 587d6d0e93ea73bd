package models

import "time"

// Group represents a music genre users can be assigned to.
type Group struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// Artists holds the users assigned to this group, populated on the
	// members read.
	Artists []GroupArtist `db:"-" json:"artists,omitempty"`
}

// GroupArtist is a user assigned to the group together with the id of the
// association row linking them.
type GroupArtist struct {
	User
	AssignID int64 `db:"assign_id" json:"assignId"`
}

// CreateGroupRequest carries the fields of the add-group form.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// UpdateGroupRequest carries the fields of the edit-group form.
type UpdateGroupRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
