package web

import (
	"encoding/json"
	"net/http"

	"github.com/YoussefKhattab111/microblog/internal/service"
	"github.com/rs/zerolog/log"
)

func SignUp(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := h.SessionManager.Load(r)

		var input struct {
			FirstName       string `json:"firstName"`
			LastName        string `json:"lastName"`
			Username        string `json:"username"`
			Email           string `json:"email"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirmPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respond(w, http.StatusBadRequest, Payload{Success: false, Message: "invalid request body"})
			return
		}

		u, err := h.service.Register(ctx, service.RegisterInput{
			FirstName:       input.FirstName,
			LastName:        input.LastName,
			Username:        input.Username,
			Email:           input.Email,
			Password:        input.Password,
			ConfirmPassword: input.ConfirmPassword,
		})
		if err != nil {
			respondErr(w, err)
			return
		}

		// Registration signs the new user in.
		err = session.PutObject(w, SessionKey, Session{
			UserID:   u.ID,
			Username: u.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create session after signup")
			respond(w, http.StatusInternalServerError, Payload{Success: false, Message: "failed to create session"})
			return
		}

		respond(w, http.StatusCreated, Payload{Success: true, Data: u.Profile()})
	}
}
