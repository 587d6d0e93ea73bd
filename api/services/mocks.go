package services

import (
	"github.com/stretchr/testify/mock"

	"github.com/musicianhub/musician-services/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUsers() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) GetUser(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetUserByLogin(login string) (*models.User, error) {
	args := m.Called(login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UpdateUser(userID int64, updates map[string]string) error {
	args := m.Called(userID, updates)
	return args.Error(0)
}

func (m *MockStore) DeleteUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockStore) GetGroups() ([]models.Group, error) {
	args := m.Called()
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockStore) GetGroup(groupID int64) (*models.Group, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockStore) GetGroupByName(name string) (*models.Group, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockStore) CreateGroup(req *models.CreateGroupRequest) (*models.Group, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockStore) UpdateGroup(groupID int64, updates map[string]string) error {
	args := m.Called(groupID, updates)
	return args.Error(0)
}

func (m *MockStore) DeleteGroup(groupID int64) error {
	args := m.Called(groupID)
	return args.Error(0)
}

func (m *MockStore) GetAssignment(assignID int64) (*models.Assignment, error) {
	args := m.Called(assignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockStore) GetAssignmentByPair(userID, groupID int64) (*models.Assignment, error) {
	args := m.Called(userID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockStore) CreateAssignment(userID, groupID int64) (*models.Assignment, error) {
	args := m.Called(userID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockStore) DeleteAssignment(assignID int64) error {
	args := m.Called(assignID)
	return args.Error(0)
}
