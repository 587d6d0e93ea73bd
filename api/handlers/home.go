package handlers

import (
	"net/http"

	services "github.com/musicianhub/musician-services/api/services"
)

// Home godoc
// @Summary Get view starting page
// @Tags home
// @Produce html
// @Success 200 {string} string "rendered home page"
// @Router / [get]
func Home(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.HomeService(svc, w, r)
	}
}
