package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/musicianhub/musician-services/models"
)

// GetGroups retrieves all groups ordered by id.
func (m *MusicianDB) GetGroups() ([]models.Group, error) {
	var groups []models.Group
	query := `SELECT id, name, created_at, updated_at FROM groups ORDER BY id`
	if err := m.DB.Select(&groups, query); err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	return groups, nil
}

// GetGroup retrieves a single group by id together with its assigned
// users. Missing row yields nil, nil.
func (m *MusicianDB) GetGroup(groupID int64) (*models.Group, error) {
	var group models.Group
	query := `SELECT id, name, created_at, updated_at FROM groups WHERE id = $1`
	if err := m.DB.Get(&group, query, groupID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	artists, err := m.getGroupArtists(group.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving artists for group: %w", err)
	}
	group.Artists = artists

	return &group, nil
}

// GetGroupByName retrieves a group by name, used for the duplicate-name
// check on creation. Missing row yields nil, nil.
func (m *MusicianDB) GetGroupByName(name string) (*models.Group, error) {
	var group models.Group
	query := `SELECT id, name, created_at, updated_at FROM groups WHERE name = $1`
	if err := m.DB.Get(&group, query, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving group by name: %w", err)
	}
	return &group, nil
}

// CreateGroup inserts a new group and returns it with its generated id.
func (m *MusicianDB) CreateGroup(req *models.CreateGroupRequest) (*models.Group, error) {
	tx, err := m.DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	now := time.Now().UTC()

	var groupID int64
	err = tx.QueryRow(`
		INSERT INTO groups (name, created_at, updated_at)
		VALUES ($1, $2, $3) RETURNING id`,
		req.Name, now, now).Scan(&groupID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error inserting group: %w", err)
	}

	if err := m.CommitTransaction(tx); err != nil {
		return nil, err
	}

	group := models.Group{
		ID:        groupID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return &group, nil
}

// UpdateGroup applies the provided field changes to an existing group.
func (m *MusicianDB) UpdateGroup(groupID int64, updates map[string]string) error {
	tx, err := m.DB.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	now := time.Now().UTC()

	if name, ok := updates["name"]; ok {
		if err := m.execQuery(tx, `UPDATE groups SET name = $1, updated_at = $2 WHERE id = $3`,
			name, now, groupID); err != nil {
			tx.Rollback()
			return fmt.Errorf("error updating group name: %w", err)
		}
	}

	if err := m.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}

// DeleteGroup removes the group row. Association rows referencing the
// group are left in place.
func (m *MusicianDB) DeleteGroup(groupID int64) error {
	tx, err := m.DB.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err := m.execQuery(tx, `DELETE FROM groups WHERE id = $1`, groupID); err != nil {
		tx.Rollback()
		return fmt.Errorf("error executing delete query: %w", err)
	}

	if err := m.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}

// getGroupArtists retrieves the users assigned to a group, each carrying
// the id of the association row that links them.
func (m *MusicianDB) getGroupArtists(groupID int64) ([]models.GroupArtist, error) {
	var artists []models.GroupArtist
	query := `
		SELECT u.id, u.login, u.first_name, u.last_name, u.created_at, u.updated_at, uig.id AS assign_id
		FROM users u
		JOIN users_in_groups uig ON uig.user_id = u.id
		WHERE uig.group_id = $1
		ORDER BY u.id`
	if err := m.DB.Select(&artists, query, groupID); err != nil {
		return nil, fmt.Errorf("error retrieving group artists: %w", err)
	}
	return artists, nil
}
