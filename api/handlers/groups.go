package handlers

import (
	"net/http"

	services "github.com/musicianhub/musician-services/api/services"
)

// CreateGroup godoc
// @Summary Create a new group
// @Description Validates the name (3 to 100 characters), rejects duplicate names and persists the group.
// @Tags groups
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "unique group name"
// @Success 303 {string} string "redirect to the group list"
// @Failure 200 {string} string "rendered error page"
// @Router /groups [post]
func CreateGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateGroupService(svc, w, r)
	}
}

// GetGroups godoc
// @Summary List all groups
// @Tags groups
// @Produce html
// @Success 200 {string} string "rendered group list"
// @Router /groups [get]
func GetGroups(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetGroupsService(svc, w, r)
	}
}

// CreateGroupView godoc
// @Summary Get view page with the add-group form
// @Tags groups
// @Produce html
// @Success 200 {string} string "rendered add-group form"
// @Router /groups/create [get]
func CreateGroupView(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateGroupViewService(svc, w, r)
	}
}

// EditGroupView godoc
// @Summary Get view page with the edit-group form
// @Tags groups
// @Produce html
// @Param id path int true "numeric id of the group"
// @Success 200 {string} string "rendered edit form"
// @Router /groups/{id}/edit [get]
func EditGroupView(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.EditGroupViewService(svc, w, r)
	}
}

// UpdateGroup godoc
// @Summary Update a group
// @Description Partial update: the name changes only when provided, validated against the same length rule.
// @Tags groups
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id formData int true "numeric id of the group"
// @Param name formData string false "new group name"
// @Success 303 {string} string "redirect to the group list"
// @Failure 200 {string} string "rendered error page"
// @Router /groups/edit [post]
func UpdateGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateGroupService(svc, w, r)
	}
}

// GroupUsers godoc
// @Summary Get a group by id with its assigned users
// @Tags groups
// @Produce html
// @Param id path int true "numeric id of the group"
// @Success 200 {string} string "rendered members view"
// @Failure 200 {string} string "rendered not-found page"
// @Router /groups/{id}/users [get]
func GroupUsers(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GroupUsersService(svc, w, r)
	}
}

// DeleteGroup godoc
// @Summary Delete a group by id
// @Description Deletes the group row only; association rows are not cascaded.
// @Tags groups
// @Produce html
// @Param id path int true "numeric id of the group"
// @Success 303 {string} string "redirect to the group list"
// @Failure 200 {string} string "rendered not-found page"
// @Router /groups/{id}/delete [post]
func DeleteGroup(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteGroupService(svc, w, r)
	}
}
