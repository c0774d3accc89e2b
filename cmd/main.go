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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-apartment-listings/docs"
	"github.com/sbilibin2017/gw-apartment-listings/internal/handlers"
	"github.com/sbilibin2017/gw-apartment-listings/internal/jwt"
	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/middlewares"
	"github.com/sbilibin2017/gw-apartment-listings/internal/migrations"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/repositories"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	JWTSecretKey        string
	JWTAccessExpSecond  int
	JWTRefreshExpSecond int

	CORSAllowedOrigins []string

	AuthRateLimitRequests int
	AuthRateLimitWindow   time.Duration
}

// @title gw-apartment-listings API
// @version 1.0.0
// @description Apartment listings with landlord listings, tenant reviews and search
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT, CORS and rate limit configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(dst *int, key, defaultValue string) {
		if err != nil {
			return
		}
		if *dst, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	getInt(&cfg.PGPort, "POSTGRES_PORT", "5432")
	getInt(&cfg.PGMaxOpenConns, "POSTGRES_MAX_OPEN_CONNS", "16")
	getInt(&cfg.PGMaxIdleConns, "POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	getInt(&cfg.RedisPort, "REDIS_PORT", "6379")
	getInt(&cfg.RedisDB, "REDIS_DB", "0")
	getInt(&cfg.RedisPoolSize, "REDIS_POOL_SIZE", "10")
	getInt(&cfg.RedisMinIdleConns, "REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "listing-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	getInt(&cfg.JWTAccessExpSecond, "JWT_ACCESS_EXP_SECOND", "3600")
	getInt(&cfg.JWTRefreshExpSecond, "JWT_REFRESH_EXP_SECOND", "2592000")

	// HTTP config
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	getInt(&cfg.AuthRateLimitRequests, "AUTH_RATE_LIMIT_REQUESTS", "5")
	if err != nil {
		return
	}
	if cfg.AuthRateLimitWindow, err = time.ParseDuration(getEnv("AUTH_RATE_LIMIT_WINDOW", "1m")); err != nil {
		err = fmt.Errorf("AUTH_RATE_LIMIT_WINDOW: %w", err)
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db, 5); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional; a nil writer makes publishing a no-op
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing listing events to %s on topic %s", strings.Join(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTAccessExpSecond)*time.Second),
		jwt.WithRefreshExpiration(time.Duration(cfg.JWTRefreshExpSecond)*time.Second),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, db, rdb, kafkaWriter, tokens),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(
	cfg config,
	db *sqlx.DB,
	rdb *redis.Client,
	kafkaWriter services.KafkaWriter,
	tokens *jwt.JWT,
) http.Handler {
	txGetter := middlewares.GetTxFromContext

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	listingReadRepo := repositories.NewListingReadRepository(db, txGetter)
	listingWriteRepo := repositories.NewListingWriteRepository(db, txGetter)
	reviewReadRepo := repositories.NewReviewReadRepository(db, txGetter)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db, txGetter)
	amenityRepo := repositories.NewAmenityRepository(db, txGetter)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, sessionRepo)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	listingService := services.NewListingService(listingReadRepo, listingWriteRepo, reviewReadRepo, userReadRepo, kafkaWriter)
	reviewService := services.NewReviewService(reviewReadRepo, reviewWriteRepo, listingReadRepo, userReadRepo, userReadRepo, kafkaWriter)
	amenityService := services.NewAmenityService(amenityRepo)

	// Middlewares
	tx := middlewares.TxMiddleware(db)
	auth := middlewares.AuthMiddleware(tokens)
	optionalAuth := middlewares.OptionalAuthMiddleware(tokens)
	authLimit := middlewares.RateLimitMiddleware(cfg.AuthRateLimitRequests, cfg.AuthRateLimitWindow)
	landlord := func(message string) func(http.Handler) http.Handler {
		return middlewares.RequireRole(models.RoleLandlord, message)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", handlers.NewIndexHandler())
	r.Get("/api/health", handlers.NewHealthHandler())

	r.Route("/api/auth", func(r chi.Router) {
		r.With(authLimit, tx).Post("/register", handlers.NewRegisterHandler(authService))
		r.With(authLimit).Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/refresh", handlers.NewRefreshHandler(authService, tokens))
		r.Post("/logout", handlers.NewLogoutHandler(authService, tokens))
		r.With(tx).Get("/verify/{userID}", handlers.NewVerifyHandler(authService))
	})

	r.Route("/api/listings", func(r chi.Router) {
		r.Get("/", handlers.NewListListingsHandler(listingService))
		r.Get("/amenities", handlers.NewListAmenitiesHandler(amenityService))
		r.With(auth, tx).Post("/amenities", handlers.NewCreateAmenityHandler(amenityService))
		r.With(optionalAuth).Get("/{listingID}", handlers.NewGetListingHandler(listingService))
		r.With(auth, landlord("Only landlords can create listings"), tx).Post("/", handlers.NewCreateListingHandler(listingService))
		r.With(auth, landlord("Only landlords can update listings"), tx).Put("/{listingID}", handlers.NewUpdateListingHandler(listingService))
		r.With(auth, landlord("Only landlords can delete listings"), tx).Delete("/{listingID}", handlers.NewDeleteListingHandler(listingService))
	})

	r.Route("/api/reviews", func(r chi.Router) {
		r.With(auth, middlewares.RequireRole(models.RoleTenant, "Only tenants can post reviews"), tx).
			Post("/", handlers.NewCreateReviewHandler(reviewService))
		r.With(auth, tx).Put("/{reviewID}", handlers.NewUpdateReviewHandler(reviewService))
		r.With(auth, tx).Delete("/{reviewID}", handlers.NewDeleteReviewHandler(reviewService))
		r.Get("/listing/{listingID}", handlers.NewListingReviewsHandler(reviewService))
	})

	r.Route("/api/search", func(r chi.Router) {
		r.Get("/", handlers.NewSearchHandler(listingService))
	})

	r.Route("/api/users/me", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", handlers.NewProfileHandler(userService))
		r.With(tx).Put("/", handlers.NewUpdateProfileHandler(userService))
		r.With(landlord("Only landlords can access listings")).Get("/listings", handlers.NewMyListingsHandler(listingService))
		r.Get("/reviews", handlers.NewMyReviewsHandler(reviewService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
