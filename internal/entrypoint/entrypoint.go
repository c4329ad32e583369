package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lonamusi/trending-collections/internal/auth"
	"github.com/lonamusi/trending-collections/internal/config"
	"github.com/lonamusi/trending-collections/internal/database"
	"github.com/lonamusi/trending-collections/internal/database/trends"
	"github.com/lonamusi/trending-collections/internal/database/users"
	http_controllers "github.com/lonamusi/trending-collections/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Trending Collections API v%s", version)

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		log.Printf("WARNING: Using the built-in development JWT secret. Set 'AUTH_JWT_SECRET' in production.")
	}
	if cfg.Auth.TokenExpiry <= 0 {
		log.Printf("Token expiry is disabled; issued tokens stay valid until the signing key rotates. Set 'AUTH_TOKEN_EXPIRY' to enable.")
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	trendRepo := trends.NewRepository(db.DB)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authService := auth.NewService(userRepo, tokens, cfg.Auth)
	authMiddleware := auth.NewMiddleware(tokens, authService)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		TrendStore:     trendRepo,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		Version:        version,
	})

	Serve(router, cfg)
}
