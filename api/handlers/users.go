package handlers

import (
	"net/http"

	services "github.com/musicianhub/musician-services/api/services"
)

// CreateUser godoc
// @Summary Create a new user
// @Description Validates login, firstName and lastName (3 to 100 characters each), rejects duplicate logins and persists the user.
// @Tags users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Param login formData string true "unique login"
// @Param firstName formData string true "first name"
// @Param lastName formData string true "last name"
// @Success 303 {string} string "redirect to the user list"
// @Failure 200 {string} string "rendered error page"
// @Router /users [post]
func CreateUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateUserService(svc, w, r)
	}
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Produce html
// @Success 200 {string} string "rendered user list"
// @Router /users [get]
func GetUsers(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUsersService(svc, w, r)
	}
}

// CreateUserView godoc
// @Summary Get view page with the add-user form
// @Tags users
// @Produce html
// @Success 200 {string} string "rendered add-user form"
// @Router /users/create [get]
func CreateUserView(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateUserViewService(svc, w, r)
	}
}

// GetUser godoc
// @Summary Get a user by id with associated genres
// @Tags users
// @Produce html
// @Param id path int true "numeric id of the user"
// @Success 200 {string} string "rendered user detail"
// @Failure 200 {string} string "rendered not-found page"
// @Router /users/{id} [get]
func GetUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUserService(svc, w, r)
	}
}

// EditUserView godoc
// @Summary Get view page with the edit-user form
// @Tags users
// @Produce html
// @Param id path int true "numeric id of the user"
// @Success 200 {string} string "rendered edit form"
// @Router /users/{id}/edit [get]
func EditUserView(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.EditUserViewService(svc, w, r)
	}
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial update: only the provided fields change, each validated against the same length rule. Login is immutable.
// @Tags users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id formData int true "numeric id of the user"
// @Param firstName formData string false "new first name"
// @Param lastName formData string false "new last name"
// @Success 303 {string} string "redirect to the user list"
// @Failure 200 {string} string "rendered error page"
// @Router /users/edit [post]
func UpdateUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateUserService(svc, w, r)
	}
}

// DeleteUser godoc
// @Summary Delete a user by id
// @Description Deletes the user row only; association rows are not cascaded.
// @Tags users
// @Produce html
// @Param id path int true "numeric id of the user"
// @Success 303 {string} string "redirect to the user list"
// @Failure 200 {string} string "rendered not-found page"
// @Router /users/{id}/delete [post]
func DeleteUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteUserService(svc, w, r)
	}
}

// AssignUser godoc
// @Summary Assign a user to a group
// @Description Verifies the user and the group exist and that the pair is not already associated, then creates the association.
// @Tags users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "numeric id of the user"
// @Param id formData int true "numeric id of the group"
// @Success 303 {string} string "redirect to the user list"
// @Failure 200 {string} string "rendered error page"
// @Router /users/{id}/assign/create [post]
func AssignUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.AssignUserService(svc, w, r)
	}
}
