package services

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/musicianhub/musician-services/internal/views"
)

// DeleteAssignService deletes an association row by its own id. Absence is
// reported through the same rendered error view as every other delete
// path.
func DeleteAssignService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	assignID, err := ParseID(mux.Vars(r)["id"])
	if err != nil {
		views.RenderError(w, r, "Assign not found")
		return
	}

	assign, err := svc.DB.GetAssignment(assignID)
	if err != nil {
		logger.Error().Err(err).Int64("assign_id", assignID).Msg("Database error retrieving assignment")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}
	if assign == nil {
		views.RenderError(w, r, "Assign not found")
		return
	}

	if err := svc.DB.DeleteAssignment(assignID); err != nil {
		logger.Error().Err(err).Int64("assign_id", assignID).Msg("Failed to delete assignment from database")
		views.RenderError(w, r, "Internal error, please try again later")
		return
	}

	logger.Info().Int64("assign_id", assignID).Msg("Assignment deleted successfully")
	http.Redirect(w, r, svc.path("/users"), http.StatusSeeOther)
}
