package models

import "time"

// Assignment is one row of the users_in_groups association table: the fact
// that a user belongs to a group. Rows are deleted by their own id, not by
// the (user, group) pair.
type Assignment struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	GroupID   int64     `db:"group_id" json:"groupId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// AssignRequest carries the body of the assign-to-group operation. The
// target user comes from the URL path; the body names the group.
type AssignRequest struct {
	ID string `json:"id"`
}
