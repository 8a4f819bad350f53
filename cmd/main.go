package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/lightbnb-gateway/docs"
	"github.com/sbilibin2017/lightbnb-gateway/internal/database"
	"github.com/sbilibin2017/lightbnb-gateway/internal/handlers"
	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/middlewares"
	"github.com/sbilibin2017/lightbnb-gateway/internal/repositories"
	"github.com/sbilibin2017/lightbnb-gateway/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title lightbnb-gateway API
// @version 1.0.0
// @description Data access gateway for the LightBnB rental marketplace
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, pgConnMaxLifetime,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		database.Config{
			Host:            pgHost,
			Port:            pgPort,
			User:            pgUser,
			Password:        pgPassword,
			Database:        pgDB,
			MaxOpenConns:    pgMaxOpenConns,
			MaxIdleConns:    pgMaxIdleConns,
			ConnMaxLifetime: pgConnMaxLifetime,
		},
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, logging and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, pgConnMaxLifetime time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "vagrant")
	pgPassword = getEnv("POSTGRES_PASSWORD", "123")
	pgDB = getEnv("POSTGRES_DB", "lightbnb")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	if pgConnMaxLifetime, err = time.ParseDuration(getEnv("POSTGRES_CONN_MAX_LIFETIME", "30m")); err != nil {
		return
	}

	// Kafka config, no brokers disables event publishing
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "lightbnb.events")

	return
}

// newRouter wires services and handlers on top of the repository gateway.
func newRouter(gw *repositories.Gateway, kafkaWriter services.KafkaWriter, appHost, appPort string) http.Handler {
	userService := services.NewUserService(gw.UserReader, gw.UserWriter, kafkaWriter)
	propertyService := services.NewPropertyService(gw.PropertyReader, gw.PropertyWriter, kafkaWriter)
	reservationService := services.NewReservationService(gw.ReservationReader)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewRegisterUserHandler(userService))
		r.Get("/", handlers.NewFindUserHandler(userService))
		r.Get("/{id}", handlers.NewGetUserHandler(userService))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/properties", handlers.NewSearchPropertiesHandler(propertyService))
		r.Post("/properties", handlers.NewCreatePropertyHandler(propertyService))
		r.Get("/reservations", handlers.NewListReservationsHandler(reservationService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}

// run initializes the logger, database and Kafka writer, then serves HTTP
// until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgConfig database.Config,
	kafkaBrokers []string, kafkaTopic string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	db, err := database.Connect(ctx, pgConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infow("Kafka writer configured", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(repositories.NewGateway(db), kafkaWriter, appHost, appPort),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
