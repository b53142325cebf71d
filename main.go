package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/blogem/token-gate/authenticator"
	"github.com/blogem/token-gate/config"
	"github.com/blogem/token-gate/controllers"
	"github.com/blogem/token-gate/database"
	gatemiddleware "github.com/blogem/token-gate/middleware"
	"github.com/blogem/token-gate/repositories"
	"github.com/blogem/token-gate/services"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Load environment variables from .env file
	loaded, err := config.LoadDotEnv()
	if err != nil {
		log.Fatalf("Failed to load the env vars: %v", err)
	}
	if !loaded {
		log.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, keeping info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

// run wires every component from cfg and serves until ctx is cancelled
func run(ctx context.Context, cfg config.Config) error {
	// Initialize database
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	r, auth, err := newHandler(ctx, cfg, db)
	if err != nil {
		return err
	}

	go purgeExpiredStates(ctx, auth, cfg.StateTTL)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.TokenTimeout + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"port":     cfg.Port,
			"provider": cfg.Provider,
			"database": cfg.DBPath,
		}).Info("token-gate starting")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newHandler builds the provider, services and router on top of db
func newHandler(ctx context.Context, cfg config.Config, db *sql.DB) (http.Handler, services.AuthService, error) {
	repos := repositories.NewRepositories(db)

	provider, err := authenticator.NewProvider(ctx, cfg.Authenticator())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize %s provider: %w", cfg.Provider, err)
	}

	srvs := services.NewServices(repos, provider, services.AuthOptions{
		StateTTL:        cfg.StateTTL,
		ExchangeTimeout: cfg.TokenTimeout,
	})
	ctrl := controllers.NewControllers(srvs)

	r, err := setupRouter(ctrl, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return r, srvs.Auth, nil
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg config.Config) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(gatemiddleware.RequestLogger(log.StandardLogger()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.TokenTimeout + 5*time.Second))
	r.Use(gatemiddleware.ClientIP)

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "token_gate_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     int64(cfg.StateTTL.Seconds()),
		Maxlifetime:    int64(cfg.StateTTL.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"healthy","service":"token-gate"}`)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessionHandler)

		r.Get("/", ctrl.Auth.Root)
		r.Get("/login", ctrl.Auth.Login)
		r.Get("/get_access_token", ctrl.Auth.Callback)
	})

	return r, nil
}

type statePurger interface {
	PurgeExpiredStates() (int64, error)
}

// purgeExpiredStates periodically drops unredeemable states until ctx ends
func purgeExpiredStates(ctx context.Context, auth statePurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpiredStates()
			if err != nil {
				log.WithError(err).Warn("failed to purge expired states")
				continue
			}
			if n > 0 {
				log.WithField("count", n).Debug("purged expired states")
			}
		}
	}
}
