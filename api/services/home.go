package services

import (
	"net/http"

	"github.com/musicianhub/musician-services/internal/views"
)

type homeData struct {
	views.Page
}

// HomeService renders the starting page.
func HomeService(svc *Service, w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, "index", homeData{
		Page: views.Page{Title: "Home page", IsHome: true},
	})
}
