package services

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musicianhub/musician-services/models"
)

// TestDeleteAssignNotFound checks deleting an absent association renders
// the not-found view and performs no mutation.
func TestDeleteAssignNotFound(t *testing.T) {
	store := new(MockStore)
	store.On("GetAssignment", int64(99)).Return(nil, nil)

	rec := postForm(t, newTestRouter(store), "/assigns/99/delete", url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Assign not found")
	store.AssertNotCalled(t, "DeleteAssignment")
	store.AssertExpectations(t)
}

// TestDeleteAssign checks the success path deletes by the association's
// own id and redirects to the user list.
func TestDeleteAssign(t *testing.T) {
	store := new(MockStore)
	store.On("GetAssignment", int64(5)).Return(&models.Assignment{
		ID: 5, UserID: 2, GroupID: 1,
	}, nil)
	store.On("DeleteAssignment", int64(5)).Return(nil)

	rec := postForm(t, newTestRouter(store), "/assigns/5/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users", rec.Header().Get("Location"))
	store.AssertExpectations(t)
}

// TestDeleteAssignBadID checks a non-numeric id renders the not-found
// view without touching the store.
func TestDeleteAssignBadID(t *testing.T) {
	store := new(MockStore)

	rec := postForm(t, newTestRouter(store), "/assigns/abc/delete", url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Assign not found")
	store.AssertNotCalled(t, "GetAssignment")
	store.AssertNotCalled(t, "DeleteAssignment")
}
