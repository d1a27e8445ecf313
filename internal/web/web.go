package web

import (
	"github.com/YoussefKhattab111/microblog/internal/config"
	"github.com/YoussefKhattab111/microblog/internal/service"
	"github.com/alexedwards/scs"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
	PostsPath   = "/posts"
	UsersPath   = "/users"
)

type Handler struct {
	Config         *config.Configuration
	service        *service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service *service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
