package services

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/musicianhub/musician-services/internal/views"
	"github.com/musicianhub/musician-services/models"
)

type userListData struct {
	views.Page
	Users []models.User
}

type userDetailData struct {
	views.Page
	User *models.User
}

type userEditData struct {
	views.Page
	User   *models.User
	Genres []models.Group
}

// CreateUserService validates the add-user form, checks the login is not
// taken and persists the new user.
func CreateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	body, err := BodyValues(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		views.RenderError(w, r, "Invalid user data. All data length must be more than 2 symbols")
		return
	}

	req := models.CreateUserRequest{
		Login:     body("login"),
		FirstName: body("firstName"),
		LastName:  body("lastName"),
	}

	if !ValidName(req.Login) || !ValidName(req.FirstName) || !ValidName(req.LastName) {
		logger.Debug().Str("login", req.Login).Msg("user creation rejected by validation")
		views.RenderError(w, r, "Invalid user data. All data length must be more than 2 symbols")
		return
	}

	existing, err := svc.DB.GetUserByLogin(req.Login)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to check for existing login")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if existing != nil {
		views.RenderError(w, r, "User with this login already exist")
		return
	}

	user, err := svc.DB.CreateUser(&req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create user in database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("user_id", user.ID).Str("login", user.Login).Msg("User created successfully")
	http.Redirect(w, r, svc.path("/users"), http.StatusSeeOther)
}

// CreateUserViewService renders the add-user form.
func CreateUserViewService(svc *Service, w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "addUser", struct{ views.Page }{
		Page: views.Page{Title: "Add user", IsAddUser: true},
	})
}

// GetUsersService lists all users.
func GetUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	users, err := svc.DB.GetUsers()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve users from database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	views.Render(w, r, "users", userListData{
		Page:  views.Page{Title: "Users", IsUsers: true},
		Users: users,
	})
}

// GetUserService renders the detail view of a single user with the genres
// the user belongs to.
func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	user, err := svc.DB.GetUser(userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Database error retrieving user")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if user == nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	views.Render(w, r, "user", userDetailData{
		Page: views.Page{Title: user.Login, IsUsers: true},
		User: user,
	})
}

// EditUserViewService renders the edit form for a user, with all groups
// available for the assign control.
func EditUserViewService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	user, err := svc.DB.GetUser(userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Database error retrieving user")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if user == nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	genres, err := svc.DB.GetGroups()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve groups from database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	views.Render(w, r, "editUser", userEditData{
		Page:   views.Page{Title: user.Login, IsUsers: true},
		User:   user,
		Genres: genres,
	})
}

// UpdateUserService applies a partial update to a user. Each provided
// field is validated; any invalid field aborts the whole update.
func UpdateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	body, err := BodyValues(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		views.RenderError(w, r, "Invalid user data. All data length must be more than 2 symbols")
		return
	}

	userID, err := ParseID(body("id"))
	if err != nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	updates := map[string]string{}
	if firstName := body("firstName"); firstName != "" {
		if !ValidName(firstName) {
			views.RenderError(w, r, "Incorrect first name provided, length must be more than 2 symbols")
			return
		}
		updates["first_name"] = firstName
	}
	if lastName := body("lastName"); lastName != "" {
		if !ValidName(lastName) {
			views.RenderError(w, r, "Incorrect last name provided, length must be more than 2 symbols")
			return
		}
		updates["last_name"] = lastName
	}

	user, err := svc.DB.GetUser(userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Database error retrieving user")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if user == nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	if err := svc.DB.UpdateUser(userID, updates); err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to update user in database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("user_id", userID).Msg("User updated successfully")
	http.Redirect(w, r, svc.path("/users"), http.StatusSeeOther)
}

// DeleteUserService deletes a user by id. Association rows are left in
// place, matching the documented lifecycle.
func DeleteUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	user, err := svc.DB.GetUser(userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Database error retrieving user")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if user == nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	if err := svc.DB.DeleteUser(userID); err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to delete user from database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("user_id", userID).Msg("User deleted successfully")
	http.Redirect(w, r, svc.path("/users"), http.StatusSeeOther)
}

// AssignUserService creates an association between the user in the path
// and the group named in the body. The lookups run strictly in sequence:
// user, then group, then the existing pair.
func AssignUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	userID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "User not found!")
		return
	}

	body, err := BodyValues(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		views.RenderError(w, r, "Group not found!")
		return
	}

	groupID, err := ParseID(body("id"))
	if err != nil {
		views.RenderError(w, r, "Group not found!")
		return
	}

	user, err := svc.DB.GetUser(userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Database error retrieving user")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if user == nil {
		views.RenderError(w, r, "User not found!")
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

	existing, err := svc.DB.GetAssignmentByPair(userID, groupID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving assignment")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if existing != nil {
		views.RenderError(w, r, "User already add to this group!")
		return
	}

	assign, err := svc.DB.CreateAssignment(userID, groupID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create assignment in database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("assign_id", assign.ID).
		Int64("user_id", userID).Int64("group_id", groupID).
		Msg("Assignment created successfully")
	http.Redirect(w, r, svc.path("/users"), http.StatusSeeOther)
}
