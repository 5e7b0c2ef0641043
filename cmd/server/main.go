package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/yishak-cs/campus-meals/internal/auth"
	"github.com/yishak-cs/campus-meals/internal/database"
	"github.com/yishak-cs/campus-meals/internal/handlers"
	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/services"
	"github.com/yishak-cs/campus-meals/pkg/helper"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	config, err := helper.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog, err := logger.New(config.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	if err := run(config, appLog); err != nil {
		appLog.Error("Server exited with error", "error", err)
		appLog.Sync()
		os.Exit(1)
	}
	appLog.Info("Server exited properly")
}

func run(config helper.Config, appLog *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Account store: Neo4j when configured, in-memory otherwise
	var users auth.UserRepository = auth.NewInMemoryUserRepository()
	if config.Neo4j.Enabled() {
		neo4jClient, err := database.NewNeo4jClient(config.Neo4j, appLog)
		if err != nil {
			return fmt.Errorf("failed to connect to Neo4j: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := neo4jClient.Close(closeCtx); err != nil {
				appLog.Warn("Error closing Neo4j connection", "error", err)
			}
		}()

		migrator := database.NewMigrator(neo4jClient)
		schemaCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := migrator.EnsureSchema(schemaCtx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		if count, err := migrator.UserCount(schemaCtx); err == nil {
			appLog.Info("Neo4j user store ready", "users", count)
		}
		users = auth.NewNeo4jUserRepository(neo4jClient)
	} else {
		appLog.Warn("NEO4J_URI not set; accounts are kept in memory")
	}

	secret := config.JWTSecret
	if secret == "" {
		secret = ephemeralSecret()
		appLog.Warn("JWT_SECRET not set; sessions will not survive a restart")
	}
	authService, err := auth.NewService(users, auth.Config{Secret: secret, SessionTTL: config.SessionTTL}, appLog)
	if err != nil {
		return err
	}

	recommendationService, err := services.NewRecommendationService(config.CatalogSource(), appLog)
	if err != nil {
		return err
	}

	if config.LogMode == "prod" || config.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(handlers.RouterConfig{
		Recommendations: recommendationService,
		Auth:            authService,
		Log:             appLog,
		CORSOrigins:     config.CORSOrigins,
		AuthRequired:    config.AuthRequired,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	events, unsubscribe := authService.Subscribe()
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLog.Info("Server starting", "port", config.Port, "auth_required", config.AuthRequired)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})
	if config.CatalogWatch {
		watcher, err := services.NewCatalogWatcher(config.CatalogWatchDirs(), recommendationService, 0, appLog)
		if err != nil {
			return err
		}
		appLog.Info("Watching catalog directory for changes", "dir", config.CatalogDir)
		g.Go(func() error { return watcher.Run(gctx) })
	}
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				appLog.Info("Session changed", "kind", ev.Kind, "user_id", ev.Session.UserID)
			}
		}
	})

	return g.Wait()
}

func ephemeralSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
