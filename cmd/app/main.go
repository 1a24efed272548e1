package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"restopos/cmd"
	"restopos/internal/adapters/out/couchdb"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	store, err := couchdb.NewStore(
		storeDSN(configs),
		time.Duration(configs.RequestTimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("could not create store: %v", err)
	}

	if err := couchdb.Bootstrap(context.Background(), store, logger); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, store, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("could not start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, store, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file, using process environment")
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "3000"),
		CouchDBURL:             envOr("COUCHDB_URL", "http://localhost:5984/"),
		CouchDBUser:            os.Getenv("COUCHDB_USER"),
		CouchDBPassword:        os.Getenv("COUCHDB_PASSWORD"),
		RequestTimeoutSeconds:  envOrInt("REQUEST_TIMEOUT_SECONDS", 10),
		ListEmptyOnUnavailable: envOrBool("LIST_EMPTY_ON_UNAVAILABLE", true),
		ReconcileCron:          os.Getenv("RECONCILE_CRON"),
	}
}

func storeDSN(configs cmd.Config) string {
	if configs.CouchDBUser == "" {
		return configs.CouchDBURL
	}
	u, err := url.Parse(configs.CouchDBURL)
	if err != nil {
		return configs.CouchDBURL
	}
	u.User = url.UserPassword(configs.CouchDBUser, configs.CouchDBPassword)
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envOrBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func startWebServer(root *cmd.CompositionRoot, store *couchdb.Store, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "store unreachable")
		}
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateRelayServer().Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
