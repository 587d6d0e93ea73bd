package handlers

import (
	"net/http"

	services "github.com/musicianhub/musician-services/api/services"
)

// DeleteAssign godoc
// @Summary Delete a user-group association by its own id
// @Tags assigns
// @Produce html
// @Param id path int true "numeric id of the association row"
// @Success 303 {string} string "redirect to the user list"
// @Failure 200 {string} string "rendered not-found page"
// @Router /assigns/{id}/delete [post]
func DeleteAssign(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteAssignService(svc, w, r)
	}
}
