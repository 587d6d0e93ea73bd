package services

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/musicianhub/musician-services/internal/views"
	"github.com/musicianhub/musician-services/models"
)

type groupListData struct {
	views.Page
	Groups []models.Group
}

type groupDetailData struct {
	views.Page
	Group *models.Group
}

// CreateGroupService validates the add-group form, checks the name is not
// taken and persists the new group.
func CreateGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	body, err := BodyValues(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		views.RenderError(w, r, "Invalid group name. All data length must be more than 2 symbols")
		return
	}

	req := models.CreateGroupRequest{Name: body("name")}

	if !ValidName(req.Name) {
		logger.Debug().Str("name", req.Name).Msg("group creation rejected by validation")
		views.RenderError(w, r, "Invalid group name. All data length must be more than 2 symbols")
		return
	}

	existing, err := svc.DB.GetGroupByName(req.Name)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to check for existing group name")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if existing != nil {
		views.RenderError(w, r, "Group with this name already exist")
		return
	}

	group, err := svc.DB.CreateGroup(&req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create group in database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("group_id", group.ID).Str("name", group.Name).Msg("Group created successfully")
	http.Redirect(w, r, svc.path("/groups"), http.StatusSeeOther)
}

// CreateGroupViewService renders the add-group form.
func CreateGroupViewService(svc *Service, w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "addGroup", struct{ views.Page }{
		Page: views.Page{Title: "Add group", IsAddGroup: true},
	})
}

// GetGroupsService lists all groups.
func GetGroupsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groups, err := svc.DB.GetGroups()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve groups from database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	views.Render(w, r, "groups", groupListData{
		Page:   views.Page{Title: "Groups", IsGroups: true},
		Groups: groups,
	})
}

// EditGroupViewService renders the edit form for a group.
func EditGroupViewService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groupID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	group, err := svc.DB.GetGroup(groupID)
	if err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Database error retrieving group")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if group == nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	views.Render(w, r, "editGroup", groupDetailData{
		Page:  views.Page{Title: group.Name, IsGroups: true},
		Group: group,
	})
}

// UpdateGroupService applies a partial update to a group.
func UpdateGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	body, err := BodyValues(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		views.RenderError(w, r, "Invalid group name. All data length must be more than 2 symbols")
		return
	}

	groupID, err := ParseID(body("id"))
	if err != nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	updates := map[string]string{}
	if name := body("name"); name != "" {
		if !ValidName(name) {
			views.RenderError(w, r, "Invalid group name. All data length must be more than 2 symbols")
			return
		}
		updates["name"] = name
	}

	group, err := svc.DB.GetGroup(groupID)
	if err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Database error retrieving group")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if group == nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	if err := svc.DB.UpdateGroup(groupID, updates); err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Failed to update group in database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("group_id", groupID).Msg("Group updated successfully")
	http.Redirect(w, r, svc.path("/groups"), http.StatusSeeOther)
}

// GroupUsersService renders the members view: a group with the users
// assigned to it.
func GroupUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groupID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	group, err := svc.DB.GetGroup(groupID)
	if err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Database error retrieving group")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if group == nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	views.Render(w, r, "usersInGroup", groupDetailData{
		Page:  views.Page{Title: fmt.Sprintf("%s users", group.Name), IsGroups: true},
		Group: group,
	})
}

// DeleteGroupService deletes a group by id. Association rows are left in
// place, matching the documented lifecycle.
func DeleteGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	groupID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	group, err := svc.DB.GetGroup(groupID)
	if err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Database error retrieving group")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if group == nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	if err := svc.DB.DeleteGroup(groupID); err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Failed to delete group from database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("group_id", groupID).Msg("Group deleted successfully")
	http.Redirect(w, r, svc.path("/groups"), http.StatusSeeOther)
}
