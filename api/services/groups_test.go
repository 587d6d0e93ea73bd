package services

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musicianhub/musician-services/models"
)

// TestCreateGroupTooShort checks that names below three characters are
// rejected and nothing is persisted.
func TestCreateGroupTooShort(t *testing.T) {
	for _, name := range []string{"", "a", "ab"} {
		store := new(MockStore)
		rec := postForm(t, newTestRouter(store), "/groups", url.Values{"name": {name}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid group name. All data length must be more than 2 symbols")
		store.AssertNotCalled(t, "CreateGroup")
	}
}

// TestCreateGroupDuplicateName checks the duplicate-name guard.
func TestCreateGroupDuplicateName(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroupByName", "Jazz").Return(&models.Group{ID: 1, Name: "Jazz"}, nil)

	rec := postForm(t, newTestRouter(store), "/groups", url.Values{"name": {"Jazz"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Group with this name already exist")
	store.AssertNotCalled(t, "CreateGroup")
	store.AssertExpectations(t)
}

// TestCreateGroupSuccess checks a valid submission redirects to the group
// list.
func TestCreateGroupSuccess(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroupByName", "Jazz").Return(nil, nil)
	store.On("CreateGroup", &models.CreateGroupRequest{Name: "Jazz"}).
		Return(&models.Group{ID: 1, Name: "Jazz"}, nil)

	rec := postForm(t, newTestRouter(store), "/groups", url.Values{"name": {"Jazz"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/groups", rec.Header().Get("Location"))
	store.AssertExpectations(t)
}

// TestGetGroups checks the list view renders every group.
func TestGetGroups(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroups").Return([]models.Group{
		{ID: 1, Name: "Jazz"},
		{ID: 2, Name: "Blues"},
	}, nil)

	rec := get(t, newTestRouter(store), "/groups")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jazz")
	assert.Contains(t, rec.Body.String(), "Blues")
	store.AssertExpectations(t)
}

// TestEditGroupViewNotFound checks a missing group renders the not-found
// view.
func TestEditGroupViewNotFound(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroup", int64(99)).Return(nil, nil)

	rec := get(t, newTestRouter(store), "/groups/99/edit")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Group not found!")
	store.AssertExpectations(t)
}

// TestUpdateGroupPartial checks that an absent name leaves the group
// unchanged apart from the update call carrying no fields.
func TestUpdateGroupPartial(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroup", int64(1)).Return(&models.Group{ID: 1, Name: "Jazz"}, nil)
	store.On("UpdateGroup", int64(1), map[string]string{"name": "Fusion"}).Return(nil)

	form := url.Values{"id": {"1"}, "name": {"Fusion"}}
	rec := postForm(t, newTestRouter(store), "/groups/edit", form)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/groups", rec.Header().Get("Location"))
	store.AssertExpectations(t)
}

// TestUpdateGroupInvalidName checks an invalid name aborts the update.
func TestUpdateGroupInvalidName(t *testing.T) {
	store := new(MockStore)

	form := url.Values{"id": {"1"}, "name": {"ab"}}
	rec := postForm(t, newTestRouter(store), "/groups/edit", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid group name")
	store.AssertNotCalled(t, "UpdateGroup")
}

// TestGroupUsers checks the members view lists the assigned artists.
func TestGroupUsers(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroup", int64(1)).Return(&models.Group{
		ID:   1,
		Name: "Jazz",
		Artists: []models.GroupArtist{
			{User: models.User{ID: 2, Login: "artist1", FirstName: "Jon", LastName: "Doe"}, AssignID: 5},
		},
	}, nil)

	rec := get(t, newTestRouter(store), "/groups/1/users")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jazz users")
	assert.Contains(t, rec.Body.String(), "artist1")
	store.AssertExpectations(t)
}

// TestDeleteGroupNotFound checks deleting an absent group performs no
// mutation.
func TestDeleteGroupNotFound(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroup", int64(99)).Return(nil, nil)

	rec := postForm(t, newTestRouter(store), "/groups/99/delete", url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Group not found!")
	store.AssertNotCalled(t, "DeleteGroup")
	store.AssertExpectations(t)
}

// TestDeleteGroup checks the success path redirects to the group list.
func TestDeleteGroup(t *testing.T) {
	store := new(MockStore)
	store.On("GetGroup", int64(1)).Return(&models.Group{ID: 1, Name: "Jazz"}, nil)
	store.On("DeleteGroup", int64(1)).Return(nil)

	rec := postForm(t, newTestRouter(store), "/groups/1/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/groups", rec.Header().Get("Location"))
	store.AssertExpectations(t)
}
