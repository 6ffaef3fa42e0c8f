package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/modules/user"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/config"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/httpserver"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/logger"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/mongo"
)

func main() {
	var appCfg AppConfig
	config.MustLoad(&appCfg)
	var mongoCfg mongo.Config
	config.MustLoad(&mongoCfg)
	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, appCfg.ServiceName))
	logger.SetAsDefault(log)

	ctx := context.Background()

	client, db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongo", logger.Error(err))
		os.Exit(1)
	}

	repo := user.NewMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Error("failed to create indexes", logger.Error(err))
		os.Exit(1)
	}

	svc := user.NewService(repo, log, appCfg.RedactedFields)
	handler := user.NewHandler(svc, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// CORS stays off unless origins are configured explicitly.
	if len(appCfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: appCfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", httpserver.HealthCheckHandler(appCfg.ServiceName, log, mongo.Healthcheck(client)))
	r.Mount("/api", user.Router(handler))

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithAddr(fmt.Sprintf(":%d", appCfg.Port)),
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server starting",
				slog.Int("port", appCfg.Port),
				slog.String("env", appCfg.Env),
			)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			if err := client.Disconnect(context.Background()); err != nil {
				l.Error("failed to disconnect mongo client", logger.Error(err))
			}
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(ctx, r); err != nil {
		log.Error("server error", logger.Error(err))
		os.Exit(1)
	}
}
