package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/musicianhub/musician-services/models"
)

// GetUsers retrieves all users ordered by id.
func (m *MusicianDB) GetUsers() ([]models.User, error) {
	var users []models.User
	query := `SELECT id, login, first_name, last_name, created_at, updated_at FROM users ORDER BY id`
	if err := m.DB.Select(&users, query); err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by id. A missing row yields a nil user
// and nil error so callers are forced to handle absence.
func (m *MusicianDB) GetUser(userID int64) (*models.User, error) {
	var user models.User
	query := `SELECT id, login, first_name, last_name, created_at, updated_at FROM users WHERE id = $1`
	if err := m.DB.Get(&user, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	genres, err := m.getUserGenres(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving genres for user: %w", err)
	}
	user.Genres = genres

	return &user, nil
}

// GetUserByLogin retrieves a user by login, used for the duplicate-login
// check on creation. Missing row yields nil, nil.
func (m *MusicianDB) GetUserByLogin(login string) (*models.User, error) {
	var user models.User
	query := `SELECT id, login, first_name, last_name, created_at, updated_at FROM users WHERE login = $1`
	if err := m.DB.Get(&user, query, login); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user by login: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user and returns it with its generated id and
// timestamps filled in.
func (m *MusicianDB) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	tx, err := m.DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	now := time.Now().UTC()

	var userID int64
	err = tx.QueryRow(`
		INSERT INTO users (login, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		req.Login, req.FirstName, req.LastName, now, now).Scan(&userID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	if err := m.CommitTransaction(tx); err != nil {
		return nil, err
	}

	user := models.User{
		ID:        userID,
		Login:     req.Login,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return &user, nil
}

// UpdateUser applies the provided field changes to an existing user. Only
// the fields present in updates are changed; login is immutable.
func (m *MusicianDB) UpdateUser(userID int64, updates map[string]string) error {
	tx, err := m.DB.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	now := time.Now().UTC()

	if firstName, ok := updates["first_name"]; ok {
		if err := m.execQuery(tx, `UPDATE users SET first_name = $1, updated_at = $2 WHERE id = $3`,
			firstName, now, userID); err != nil {
			tx.Rollback()
			return fmt.Errorf("error updating user first name: %w", err)
		}
	}

	if lastName, ok := updates["last_name"]; ok {
		if err := m.execQuery(tx, `UPDATE users SET last_name = $1, updated_at = $2 WHERE id = $3`,
			lastName, now, userID); err != nil {
			tx.Rollback()
			return fmt.Errorf("error updating user last name: %w", err)
		}
	}

	if err := m.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}

// DeleteUser removes the user row. Association rows referencing the user
// are left in place.
func (m *MusicianDB) DeleteUser(userID int64) error {
	tx, err := m.DB.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err := m.execQuery(tx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		tx.Rollback()
		return fmt.Errorf("error executing delete query: %w", err)
	}

	if err := m.CommitTransaction(tx); err != nil {
		return err
	}

	return nil
}

// getUserGenres retrieves the groups a user belongs to, each carrying the
// id of the association row that links them.
func (m *MusicianDB) getUserGenres(userID int64) ([]models.UserGenre, error) {
	var genres []models.UserGenre
	query := `
		SELECT g.id, g.name, g.created_at, g.updated_at, uig.id AS assign_id
		FROM groups g
		JOIN users_in_groups uig ON uig.group_id = g.id
		WHERE uig.user_id = $1
		ORDER BY g.id`
	if err := m.DB.Select(&genres, query, userID); err != nil {
		return nil, fmt.Errorf("error retrieving user genres: %w", err)
	}
	return genres, nil
}
