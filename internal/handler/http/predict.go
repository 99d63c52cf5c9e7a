package http

import (
	"errors"
	"net/http"

	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/internal/service"
)

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed prediction form")
		h.render(w, r, http.StatusBadRequest, "predict.html", predictData{Message: "An error occurred. Please try again."})
		return
	}

	prediction, err := h.services.PredictionService.Predict(ctx, r.PostForm)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			log.Err(err).Msg("prediction input rejected")
			h.render(w, r, http.StatusBadRequest, "predict.html", predictData{FieldErrors: validationErr.Fields})
			return
		}

		log.Err(err).Msg("unexpected error occurred during prediction")
		h.render(w, r, http.StatusInternalServerError, "predict.html", predictData{Message: "An error occurred. Please try again."})
		return
	}

	log.Debug().Int("label", prediction.Label).Float64("score", prediction.Score).Msg("prediction rendered")
	h.render(w, r, http.StatusOK, "predict.html", predictData{
		HasResult: true,
		Label:     prediction.Label,
		Score:     prediction.Score,
	})
}
