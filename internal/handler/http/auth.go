package http

import (
	"errors"
	"net/http"

	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/internal/service"
	"github.com/JahangirOsman/hdp-webapp/internal/store"
)

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "detail.html", pageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed login form")
		h.render(w, r, http.StatusBadRequest, "detail.html", pageData{Message: "Both email and password are required."})
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.render(w, r, http.StatusBadRequest, "detail.html", pageData{Message: "Both email and password are required."})
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			h.render(w, r, http.StatusUnauthorized, "index.html", pageData{Message: "Email not registered."})
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			h.render(w, r, http.StatusUnauthorized, "index.html", pageData{Message: "Invalid password!"})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.render(w, r, http.StatusInternalServerError, "index.html", pageData{Message: "An error occurred. Please try again."})
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("user successfully logged in")
	h.render(w, r, http.StatusOK, "detail.html", pageData{Message: "Login successful!"})
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", pageData{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed registration form")
		h.render(w, r, http.StatusBadRequest, "index.html", pageData{Message: "An error occurred. Please try again."})
		return
	}

	username := r.PostFormValue("Username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			h.render(w, r, http.StatusBadRequest, "index.html", pageData{Message: "An error occurred. Please try again."})
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			h.render(w, r, http.StatusConflict, "index.html", pageData{Message: "Email already exists. Try a different one."})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.render(w, r, http.StatusInternalServerError, "index.html", pageData{Message: "An error occurred. Please try again."})
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user successfully registered")
	h.render(w, r, http.StatusOK, "index.html", pageData{Message: "Registration successful!"})
}
