package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/JahangirOsman/hdp-webapp/internal/config"
	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	services *service.Services

	templates *template.Template

	// requestTimeout bounds the context of every inbound request.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("page template parsing failed: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		templates:      templates,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}, nil
}

// render writes one named page template with the given status.
// Execution errors are only logged: the status line is already out.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("template execution failed")
	}
}
