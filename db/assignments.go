package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/musicianhub/musician-services/models"
)

// GetAssignment retrieves an association row by its own id. Missing row
// yields nil, nil.
func (m *MusicianDB) GetAssignment(assignID int64) (*models.Assignment, error) {
	var assign models.Assignment
	query := `SELECT id, user_id, group_id, created_at, updated_at FROM users_in_groups WHERE id = $1`
	if err := m.DB.Get(&assign, query, assignID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}
	return &assign, nil
}

// GetAssignmentByPair retrieves the association row for a (user, group)
// pair, used for the already-assigned check. Missing row yields nil, nil.
func (m *MusicianDB) GetAssignmentByPair(userID, groupID int64) (*models.Assignment, error) {
	var assign models.Assignment
	query := `SELECT id, user_id, group_id, created_at, updated_at FROM users_in_groups WHERE user_id = $1 AND group_id = $2`
	if err := m.DB.Get(&assign, query, userID, groupID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving assignment by pair: %w", err)
	}
	return &assign, nil
}

// CreateAssignment inserts a new association row for the pair.
func (m *MusicianDB) CreateAssignment(userID, groupID int64) (*models.Assignment, error) {
	tx, err := m.DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	now := time.Now().UTC()

	var assignID int64
	err = tx.QueryRow(`
		INSERT INTO users_in_groups (user_id, group_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, groupID, now, now).Scan(&assignID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error inserting assignment: %w", err)
	}

	if err := m.CommitTransaction(tx); err != nil {
		return nil, err
	}

	assign := models.Assignment{
		ID:        assignID,
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return &assign, nil
}

// DeleteAssignment removes an association row by its own id.
func (m *MusicianDB) DeleteAssignment(assignID int64) error {
	tx, err := m.DB.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err := m.execQuery(tx, `DELETE FROM users_in_groups WHERE id = $1`, assignID); err != nil {
		tx.Rollback()
		return fmt.Errorf("error executing delete query: %w", err)
	}

	if err := m.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}
