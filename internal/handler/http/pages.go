package http

import (
	"net/http"

	"github.com/JahangirOsman/hdp-webapp/internal/service"
	"github.com/JahangirOsman/hdp-webapp/models"
)

// pageData is the view model of the plain pages: at most one user-facing
// message per render.
type pageData struct {
	Message string
}

// predictData is the view model of the prediction page. Exactly one of
// FieldErrors or HasResult is populated on a POST; both are empty when the
// page is reached through a fresh login.
type predictData struct {
	Message     string
	FieldErrors []models.FieldError
	HasResult   bool
	Label       int
	Score       float64
}

// visualizationData carries the rendered chart fragments.
type visualizationData struct {
	Charts []service.ChartFragment
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index.html", pageData{})
}

func (h *Handler) visualization(w http.ResponseWriter, r *http.Request) {
	charts := h.services.ChartService.BuildCharts()
	h.render(w, r, http.StatusOK, "visualization.html", visualizationData{Charts: charts})
}
