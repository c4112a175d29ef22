package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/persona-writer-agent/internal/a2a"
	"github.com/BerylCAtieno/persona-writer-agent/internal/api"
	"github.com/BerylCAtieno/persona-writer-agent/internal/config"
	"github.com/BerylCAtieno/persona-writer-agent/internal/fetch"
	"github.com/BerylCAtieno/persona-writer-agent/internal/generator"
	"github.com/BerylCAtieno/persona-writer-agent/internal/llm"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/profiler"
	"github.com/BerylCAtieno/persona-writer-agent/internal/service"
	"github.com/BerylCAtieno/persona-writer-agent/internal/store"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command for starting the HTTP server
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and A2A server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.Open(cfg.DB.Driver, cfg.DB.DSN, log)
	if err != nil {
		return err
	}
	if err := store.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	client, err := llm.New(ctx, cfg.LLM.Settings())
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}
	if gc, ok := client.(*llm.GeminiClient); ok {
		defer gc.Close()
	}

	personaRepo := store.NewPersonaRepo(db, log)
	postRepo := store.NewBlogPostRepo(db, log)

	personas := service.NewPersonaService(
		profiler.NewAnalyzer(client, log),
		fetch.New(30 * time.Second),
		personaRepo,
		log,
	)
	blogs := service.NewBlogService(generator.NewGenerator(client, log), personaRepo, postRepo, log)

	router := api.NewRouter(api.RouterConfig{
		PersonaHandler: api.NewPersonaHandler(personas, blogs),
		BlogHandler:    api.NewBlogHandler(blogs),
		A2AHandler:     a2a.NewHandler(personas, blogs, log),
		Log:            log,
		CORSOrigins:    cfg.CORS.Origins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Persona Writer Agent starting",
			"port", cfg.Server.Port,
			"llm_provider", cfg.LLM.Provider,
			"db_driver", cfg.DB.Driver,
		)
		log.Info("Agent card available", "url", fmt.Sprintf("http://localhost:%s/.well-known/agent.json", cfg.Server.Port))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdown:
		log.Info("Server shutdown initiated", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("Server stopped")
		return nil
	}
}
