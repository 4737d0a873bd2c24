package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	_ "github.com/dimasarya/panelstore/docs"
	"github.com/dimasarya/panelstore/internal/auth"
	"github.com/dimasarya/panelstore/internal/config"
	api "github.com/dimasarya/panelstore/internal/http"
	"github.com/dimasarya/panelstore/internal/http/ban"
	"github.com/dimasarya/panelstore/internal/http/handlers"
	rl "github.com/dimasarya/panelstore/internal/http/rate_limiter"
	"github.com/dimasarya/panelstore/internal/logger"
	"github.com/dimasarya/panelstore/internal/repo"
	"github.com/dimasarya/panelstore/internal/store"
)

// @title Panelstore API
// @version 1.0
// @description Storefront catalog and admin API backed by a single JSON document.
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := auth.Configure(cfg.Auth.Secret, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatalw("could not configure session gate", "error", err)
	}

	st := store.NewFileStore(cfg.Store.DataFile, log)
	st.Load() // initializes and self-heals the product file at boot
	handlers.SetProductRepo(repo.NewFileProductRepository(st))
	handlers.SetUploadDir(cfg.Files.UploadDir)
	handlers.SetLogger(log)
	api.SetPublicDir(cfg.Files.PublicDir)

	if cfg.Redis.Addr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalw("could not connect to redis", "addr", cfg.Redis.Addr, "error", err)
		}
		defer rdb.Close()
		ban.Setup(rdb, ctx, cfg.Alert, log)
		log.Infow("login ban service enabled", "addr", cfg.Redis.Addr)
	}

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infow("server running", "addr", addr, "data_file", cfg.Store.DataFile)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
