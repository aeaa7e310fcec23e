package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortune-dashboard/api"
	"fortune-dashboard/config"
	"fortune-dashboard/credentials"
	"fortune-dashboard/loader"
	"fortune-dashboard/quotes"
	"fortune-dashboard/session"

	"github.com/joho/godotenv"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logs.Info("no .env file found, relying on environment variables")
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logs.Errorf("dashboard stopped, err: %+v", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	seeds, err := loader.LoadSeeds(cfg.Seed.Path)
	if err != nil {
		return errors.Wrap(err, "load seeds")
	}
	logs.Infof("loaded %d seed companies from %s", len(seeds), cfg.Seed.Path)

	provider, err := quotes.NewProvider(cfg.Quotes.Provider, cfg.Quotes.Timeout)
	if err != nil {
		return errors.Wrap(err, "quote provider")
	}

	sessions, err := newSessionStore(cfg.Session, credentials.NewEnvProvider())
	if err != nil {
		return errors.Wrap(err, "session store")
	}
	defer sessions.Close()

	handler := api.NewHandler(seeds, provider, sessions, cfg.Search.Engine)
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logs.Infof("server starting on %s (quotes: %s, search: %s, sessions: %s)",
			cfg.Server.Addr, provider.Name(), cfg.Search.Engine, cfg.Session.Store)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionStore(cfg config.SessionConfig, creds credentials.Provider) (session.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return session.NewMemoryStore(cfg.TTL), nil
	case "redis":
		store := session.NewRedisStore(cfg.RedisAddr, credentials.Optional(creds, "REDIS_PASSWORD"), cfg.RedisDB, cfg.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.Wrap(session.ErrUnknownStore, cfg.Store)
	}
}
