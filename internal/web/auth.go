package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const SessionKey = "user"

// Session is the signed-in identity carried in the cookie; it is the only
// reference to "self" for the duration of the session.
type Session struct {
	UserID   string
	Username string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				h.ServeHTTP(w, r)
				return
			}
			respond(w, http.StatusUnauthorized, Payload{Success: false, Message: "please login first"})
		})
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := handler.SessionManager.Load(r)

		var input struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respond(w, http.StatusBadRequest, Payload{Success: false, Message: "invalid request body"})
			return
		}

		u, err := handler.service.Authenticate(ctx, input.Identifier, input.Password)
		if err != nil {
			respondErr(w, err)
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			UserID:   u.ID,
			Username: u.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create login session")
			respond(w, http.StatusInternalServerError, Payload{Success: false, Message: "failed to create session"})
			return
		}

		respondData(w, u.Profile())
	}
}

// Logout destroys the session. Calling it without one is fine.
func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		respond(w, http.StatusOK, Payload{Success: true, Message: "logged out"})
	}
}

// CurrentSession reports the signed-in user, if any.
func CurrentSession(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := GetSession(r.Context())
		if !ok {
			respond(w, http.StatusOK, Payload{Success: true})
			return
		}

		u, err := handler.service.GetUser(r.Context(), s.UserID)
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, u.Profile())
	}
}
