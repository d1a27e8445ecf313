package main

import (
	"context"
	"encoding/gob"
	"log"
	"net/http"
	"os"

	"github.com/YoussefKhattab111/microblog/internal/config"
	"github.com/YoussefKhattab111/microblog/internal/initialization"
	"github.com/YoussefKhattab111/microblog/internal/notify"
	"github.com/YoussefKhattab111/microblog/internal/service"
	"github.com/YoussefKhattab111/microblog/internal/store"
	"github.com/YoussefKhattab111/microblog/internal/store/jsonstore"
	"github.com/YoussefKhattab111/microblog/internal/store/memstore"
	"github.com/YoussefKhattab111/microblog/internal/store/sqlitestore"
	"github.com/YoussefKhattab111/microblog/internal/web"
	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	st, err := openStore(&cfg)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to open the store")
		os.Exit(1)
	}
	zero.Info().Str("backend", cfg.StoreBackend).Msg("store ready")

	q, err := initialization.InitQueue(&cfg)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}
	notifier := notify.New(context.Background(), q)

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(cfg.SessionKey)

	svc := service.New(cfg, st, notifier)

	handler := web.New(&cfg, &svc, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	zero.Info().Str("addr", cfg.Addr).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

func openStore(cfg *config.Configuration) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		d, err := initialization.OpenDB(cfg.DbUrl)
		if err != nil {
			return nil, err
		}
		if err = initialization.SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
			return nil, err
		}
		return sqlitestore.New(d), nil
	case config.StoreMemory:
		return memstore.New(), nil
	default:
		return jsonstore.New(cfg.DataDir)
	}
}
