package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gt-landmarks/docs"

	"github.com/sbilibin2017/gt-landmarks/internal/config"
	"github.com/sbilibin2017/gt-landmarks/internal/handlers"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/middlewares"
	"github.com/sbilibin2017/gt-landmarks/internal/repositories"
	"github.com/sbilibin2017/gt-landmarks/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gt-landmarks API
// @version 1.0.0
// @description Campus landmark catalog with users, visits, analytics and image delivery
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
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

// landmarkAPI is everything the router needs from the landmark service.
type landmarkAPI interface {
	handlers.LandmarkLister
	handlers.LandmarkGetter
	handlers.VisitorLister
}

// userAPI is everything the router needs from the user service.
type userAPI interface {
	handlers.UserCreator
	handlers.UserLister
	handlers.UserGetter
	handlers.UserVisitLister
}

// newRouter mounts every API route under /api plus the swagger UI.
func newRouter(
	landmarks landmarkAPI,
	users userAPI,
	visits handlers.VisitRecorder,
	analytics handlers.AnalyticsSummarizer,
	images handlers.ImageGetter,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.AllowAll().Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/landmarks", handlers.NewListLandmarksHandler(landmarks))
		r.Get("/landmarks/{id}", handlers.NewGetLandmarkHandler(landmarks))
		r.Get("/landmarks/{id}/visitors", handlers.NewLandmarkVisitorsHandler(landmarks))

		r.Post("/users", handlers.NewCreateUserHandler(users))
		r.Get("/users", handlers.NewListUsersHandler(users))
		r.Get("/users/{id}", handlers.NewGetUserHandler(users))
		r.Get("/users/{id}/visits", handlers.NewUserVisitsHandler(users))

		r.Post("/visits", handlers.NewRecordVisitHandler(visits))
		r.Get("/analytics", handlers.NewAnalyticsHandler(analytics))
		r.Get("/images/*", handlers.NewImageHandler(images))
		r.Get("/health", handlers.NewHealthHandler())
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, database, optional Redis, Kafka and gRPC
// health collaborators, and the HTTP server. It blocks until ctx is done or a
// shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := repositories.Bootstrap(ctx, db); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Connect to Redis
	var imageCache services.ImageCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		imageCache = repositories.NewImageCacheRepository(rdb, cfg.RedisImageTTL)
	} else {
		logger.Log.Warn("Redis not configured, image cache disabled")
	}

	// Kafka producer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaVisitsTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("Kafka not configured, visit events disabled")
	}

	// Initialize repositories
	landmarkRepo := repositories.NewLandmarkRepository(db)
	userRepo := repositories.NewUserRepository(db)
	visitRepo := repositories.NewVisitRepository(db)
	imageRepo := repositories.NewImageRepository(db)

	// Initialize services
	landmarkService := services.NewLandmarkService(landmarkRepo, userRepo, visitRepo)
	userService := services.NewUserService(userRepo, userRepo, landmarkRepo, visitRepo)
	visitService := services.NewVisitService(visitRepo, kafkaWriter)
	analyticsService := services.NewAnalyticsService(landmarkRepo, userRepo, visitRepo)
	imageService := services.NewImageService(imageRepo, imageCache)

	r := newRouter(
		landmarkService,
		userService,
		visitService,
		analyticsService,
		imageService,
		fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// gRPC health service
	var grpcServer *grpc.Server
	var healthServer *health.Server
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("gRPC listen failed: %w", err)
		}
		grpcServer = grpc.NewServer()
		healthServer = health.NewServer()
		healthpb.RegisterHealthServer(grpcServer, healthServer)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

		go func() {
			logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server failed: %w", err)
			}
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	if healthServer != nil {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	if serveErr != nil {
		return serveErr
	}
	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
