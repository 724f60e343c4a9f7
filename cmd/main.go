package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/contact-form/docs"
	"github.com/sbilibin2017/contact-form/internal/db"
	"github.com/sbilibin2017/contact-form/internal/handlers"
	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/middlewares"
	"github.com/sbilibin2017/contact-form/internal/repositories"
	"github.com/sbilibin2017/contact-form/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title contact-form API
// @version 1.0.0
// @description Stores contact-form submissions and lists the most recent ones
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dataDir, dbFile, databaseURL, publicDir,
		redisAddr, redisPassword, redisDB,
		rateLimit, rateWindowSecond, trustProxy,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dataDir, dbFile, databaseURL, publicDir,
		redisAddr, redisPassword, redisDB,
		rateLimit, rateWindowSecond, trustProxy,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from an optional dotenv file and returns
// the server, storage, static asset and rate limit configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dataDir, dbFile, databaseURL, publicDir string,
	redisAddr, redisPassword string, redisDB int,
	rateLimit, rateWindowSecond int, trustProxy bool,
	err error,
) {
	// a missing file is fine: the environment alone is enough
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("HOST", "")
	appPort = getEnv("PORT", "3000")
	logLevel = getEnv("LOG_LEVEL", "info")

	// Storage config
	dataDir = getEnv("DATA_DIR", "data")
	dbFile = getEnv("DB_FILE", "users.db")
	databaseURL = getEnv("DATABASE_URL", "")
	publicDir = getEnv("PUBLIC_DIR", "public")

	// Redis config
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if rateLimit, err = strconv.Atoi(getEnv("SUBMIT_RATE_LIMIT", "10")); err != nil {
		return
	}
	if rateWindowSecond, err = strconv.Atoi(getEnv("SUBMIT_RATE_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// Only set behind a reverse proxy that overwrites X-Forwarded-For
	if trustProxy, err = strconv.ParseBool(getEnv("TRUST_PROXY", "false")); err != nil {
		return
	}

	return
}

// run initializes the logger, the store and the optional Redis client, then serves
// HTTP until ctx is done or a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dataDir, dbFile, databaseURL, publicDir string,
	redisAddr, redisPassword string, redisDB int,
	rateLimit, rateWindowSecond int, trustProxy bool,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	conn, err := db.Open(ctx, db.Options{
		DataDir:     dataDir,
		FileName:    dbFile,
		DatabaseURL: databaseURL,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	var rateCounter middlewares.HitCounter
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		rateCounter = repositories.NewSubmitRateRepository(rdb, time.Duration(rateWindowSecond)*time.Second)
		logger.Log.Infof("Submit rate limit %d per %ds", rateLimit, rateWindowSecond)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           newRouter(conn, publicDir, rateCounter, int64(rateLimit), trustProxy),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("Server listening on http://localhost:%s", appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers onto a chi router.
// rateCounter may be nil, which disables the submit rate limit. Client addresses
// are taken from X-Forwarded-For / X-Real-IP only when trustProxy is set.
func newRouter(conn *sqlx.DB, publicDir string, rateCounter middlewares.HitCounter, rateLimit int64, trustProxy bool) http.Handler {
	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn)

	userService := services.NewUserService(userWriteRepo, userReadRepo)

	submitHandler := handlers.NewSubmitHandler(userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	healthHandler := handlers.NewHealthHandler(userReadRepo)

	r := chi.NewRouter()
	if trustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Group(func(r chi.Router) {
		if rateCounter != nil {
			r.Use(middlewares.RateLimitMiddleware(rateCounter, rateLimit))
		}
		r.Post("/submit", submitHandler)
	})
	r.Get("/users", listUsersHandler)
	r.Get("/health", healthHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Handle("/*", http.FileServer(http.Dir(publicDir)))

	return r
}
