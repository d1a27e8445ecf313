package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))
	if h.Config.Debug {
		r.Use(RequestLogger)
	}

	r.Route("/", func(r chi.Router) {
		r.Post(LoginRoute, Login(h))
		r.Post(SignUpRoute, SignUp(h))
		r.Get("/logout", Logout(h))
		r.Get("/session", CurrentSession(h))
	})

	r.Get("/feed", GetFeed(h))
	r.Get("/search", SearchUsers(h))

	r.Route(PostsPath, func(r chi.Router) {
		r.With(authenticated).Post("/", PublishPost(h))
		r.Route("/{id}", func(r chi.Router) {
			r.With(authenticated).Patch("/", EditPost(h))
			r.With(authenticated).Delete("/", DeletePost(h))
			r.With(authenticated).Post("/like", ToggleLike(h))
			r.With(authenticated).Post("/comments", AddComment(h))
			r.Post("/share", SharePost(h))
		})
	})

	r.Route(UsersPath+"/{id}", func(r chi.Router) {
		r.Get("/", GetProfile(h))
		r.With(authenticated).Post("/follow", ToggleFollow(h))
		r.Get("/followers", GetFollowers(h))
		r.Get("/following", GetFollowing(h))
	})

	r.With(authenticated).Patch("/profile", EditProfile(h))
}

func RequestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
