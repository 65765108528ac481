// Package app assembles the application: configuration, logging, the
// collection store client, repositories, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	activityrepo "github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection/activity"
	bugrepo "github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection/bug"
	commentrepo "github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection/comment"
	projectrepo "github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection/project"
	userrepo "github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection/user"
	authjwt "github.com/heartmarshall/bugtrackr-backend/internal/auth"
	"github.com/heartmarshall/bugtrackr-backend/internal/config"
	activitysvc "github.com/heartmarshall/bugtrackr-backend/internal/service/activity"
	authsvc "github.com/heartmarshall/bugtrackr-backend/internal/service/auth"
	bugsvc "github.com/heartmarshall/bugtrackr-backend/internal/service/bug"
	commentsvc "github.com/heartmarshall/bugtrackr-backend/internal/service/comment"
	projectsvc "github.com/heartmarshall/bugtrackr-backend/internal/service/project"
	usersvc "github.com/heartmarshall/bugtrackr-backend/internal/service/user"
	"github.com/heartmarshall/bugtrackr-backend/internal/transport/middleware"
	"github.com/heartmarshall/bugtrackr-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// collection store client, repositories, services, and handlers, then
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	client, err := collection.NewClient(cfg.Collection.BaseURL, cfg.Collection.APIKey, cfg.Collection.Timeout, logger)
	if err != nil {
		return fmt.Errorf("collection client: %w", err)
	}
	store := collection.Scope(client, cfg.Collection.Name)

	bugs := bugrepo.New(store, logger)
	comments := commentrepo.New(store, logger)
	projects := projectrepo.New(store, logger)
	users := userrepo.New(store, logger)
	activity := activityrepo.New(store, logger)

	coordinator := collection.NewCoordinator(logger)
	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	bugService := bugsvc.NewService(logger, bugs, comments, projects, users, activity)
	commentService := commentsvc.NewService(logger, comments, bugs, users, coordinator)
	projectService := projectsvc.NewService(logger, projects)
	userService := usersvc.NewService(logger, users)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth.AccessTokenTTL)
	activityService := activitysvc.NewService(logger, activity, bugs)

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Bugs:     rest.NewBugHandler(bugService, activityService, logger),
		Comments: rest.NewCommentHandler(commentService, logger),
		Projects: rest.NewProjectHandler(projectService, logger),
		Users:    rest.NewUserHandler(userService, logger),
		Health:   rest.NewHealthHandler(client, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
