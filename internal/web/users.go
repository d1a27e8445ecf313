package web

import (
	"encoding/json"
	"net/http"

	"github.com/YoussefKhattab111/microblog/internal/service"
	"github.com/go-chi/chi/v5"
)

// GetProfile returns the user's outward profile together with their posts,
// and whether the signed-in caller follows them.
func GetProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		u, err := h.service.GetUser(ctx, id)
		if err != nil {
			respondErr(w, err)
			return
		}

		posts, err := h.service.UserPosts(ctx, id)
		if err != nil {
			respondErr(w, err)
			return
		}

		var followedByMe bool
		if s, ok := GetSession(ctx); ok && s.UserID != id {
			if self, err := h.service.GetUser(ctx, s.UserID); err == nil {
				followedByMe = self.Follows(id)
			}
		}

		respondData(w, map[string]any{
			"user":         u.Profile(),
			"posts":        posts,
			"followedByMe": followedByMe,
		})
	}
}

func EditProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var input struct {
			Name       string `json:"name"`
			Bio        string `json:"bio"`
			Location   string `json:"location"`
			Website    string `json:"website"`
			Avatar     string `json:"avatar"`
			CoverImage string `json:"coverImage"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respond(w, http.StatusBadRequest, Payload{Success: false, Message: "invalid request body"})
			return
		}

		u, err := h.service.UpdateProfile(r.Context(), s.UserID, service.ProfileInput{
			Name:       input.Name,
			Bio:        input.Bio,
			Location:   input.Location,
			Website:    input.Website,
			Avatar:     input.Avatar,
			CoverImage: input.CoverImage,
		})
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, u.Profile())
	}
}

func ToggleFollow(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		targetID := chi.URLParam(r, "id")
		state, err := h.service.ToggleFollow(r.Context(), s.UserID, targetID)
		if err != nil {
			respondErr(w, err)
			return
		}

		target, err := h.service.GetUser(r.Context(), targetID)
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, map[string]any{
			"state":     state,
			"followers": len(target.Followers),
		})
	}
}

func GetFollowers(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.service.Followers(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, profiles)
	}
}

func GetFollowing(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.service.Following(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, profiles)
	}
}

func SearchUsers(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, profiles)
	}
}
