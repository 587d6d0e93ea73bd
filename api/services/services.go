package services

import (
	"github.com/musicianhub/musician-services/internal/appconfig"
	"github.com/musicianhub/musician-services/models"
)

// Store is the persistence surface the services depend on. It is
// implemented by *db.MusicianDB and mocked in tests. Reads that find no
// row return a nil entity and nil error.
type Store interface {
	GetUsers() ([]models.User, error)
	GetUser(userID int64) (*models.User, error)
	GetUserByLogin(login string) (*models.User, error)
	CreateUser(req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(userID int64, updates map[string]string) error
	DeleteUser(userID int64) error

	GetGroups() ([]models.Group, error)
	GetGroup(groupID int64) (*models.Group, error)
	GetGroupByName(name string) (*models.Group, error)
	CreateGroup(req *models.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(groupID int64, updates map[string]string) error
	DeleteGroup(groupID int64) error

	GetAssignment(assignID int64) (*models.Assignment, error)
	GetAssignmentByPair(userID, groupID int64) (*models.Assignment, error)
	CreateAssignment(userID, groupID int64) (*models.Assignment, error)
	DeleteAssignment(assignID int64) error
}

// Service bundles the dependencies the request services need.
type Service struct {
	Config *appconfig.Config
	DB     Store
}
