package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func GetFeed(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.service.Feed(r.Context())
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, posts)
	}
}

func PublishPost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var input struct {
			Content string   `json:"content"`
			Images  []string `json:"images"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respond(w, http.StatusBadRequest, Payload{Success: false, Message: "invalid request body"})
			return
		}

		p, err := h.service.Publish(r.Context(), s.UserID, input.Content, input.Images)
		if err != nil {
			respondErr(w, err)
			return
		}
		respond(w, http.StatusCreated, Payload{Success: true, Data: p})
	}
}

func EditPost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var input struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respond(w, http.StatusBadRequest, Payload{Success: false, Message: "invalid request body"})
			return
		}

		p, err := h.service.Edit(r.Context(), s.UserID, chi.URLParam(r, "id"), input.Content)
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, p)
	}
}

func DeletePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		if err := h.service.Remove(r.Context(), s.UserID, chi.URLParam(r, "id")); err != nil {
			respondErr(w, err)
			return
		}
		respond(w, http.StatusOK, Payload{Success: true, Message: "post deleted"})
	}
}

func ToggleLike(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		state, err := h.service.ToggleLike(r.Context(), s.UserID, chi.URLParam(r, "id"))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, state)
	}
}

func AddComment(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var input struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respond(w, http.StatusBadRequest, Payload{Success: false, Message: "invalid request body"})
			return
		}

		c, err := h.service.AddComment(r.Context(), s.UserID, chi.URLParam(r, "id"), input.Content)
		if err != nil {
			respondErr(w, err)
			return
		}
		respond(w, http.StatusCreated, Payload{Success: true, Data: c})
	}
}

func SharePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.service.Share(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, map[string]int{"shares": count})
	}
}
