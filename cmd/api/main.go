package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"job-portal-backend/config"
	_ "job-portal-backend/docs" // Important for Swagger
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/events"
	"job-portal-backend/internal/repository/memory"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/auth"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/redis"
	"job-portal-backend/pkg/storage"
	"job-portal-backend/pkg/validation"
)

type repositories struct {
	users         domain.UserRepository
	profiles      domain.ProfileRepository
	companies     domain.CompanyProfileRepository
	jobs          domain.JobRepository
	applications  domain.ApplicationRepository
	notifications domain.NotificationRepository
	messages      domain.MessageRepository
	db            usecase.Pinger
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		users:         postgres.NewUserRepository(pool),
		profiles:      postgres.NewProfileRepository(pool),
		companies:     postgres.NewCompanyProfileRepository(pool),
		jobs:          postgres.NewJobRepository(pool),
		applications:  postgres.NewApplicationRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
		messages:      postgres.NewMessageRepository(pool),
		db:            postgres.NewPinger(pool),
	}
}

func memoryRepositories(store *memory.Store) repositories {
	return repositories{
		users:         store.Users(),
		profiles:      store.Profiles(),
		companies:     store.Companies(),
		jobs:          store.Jobs(),
		applications:  store.Applications(),
		notifications: store.Notifications(),
		messages:      store.Messages(),
		db:            store,
	}
}

// @title           Job Portal API
// @version         1.0
// @description     Accounts, job catalog, applications, profiles and notifications.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	if err := logger.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	logger.Log.Info("Starting job portal backend", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))

	ctx := context.Background()

	// 3. Setup Database
	var (
		repos repositories
		pool  *pgxpool.Pool
	)
	if cfg.DBUrl != "" {
		pool, err = database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
		if err != nil {
			logger.Log.Fatal("Failed to connect to database", zap.Error(err))
		}
		repos = postgresRepositories(pool)
	} else {
		logger.Log.Warn("DATABASE_URL not set, using the in-memory store; data is lost on restart")
		repos = memoryRepositories(memory.NewStore())
	}

	// 4. Optional Redis for shared rate limits
	var redisClient *goredis.Client
	redisClient, err = redis.New(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis not configured, rate limits are per process")
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limits are per process", zap.Error(err))
	}

	// 5. Uploads and tokens
	store, err := storage.NewLocal(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		logger.Log.Fatal("Failed to prepare upload directory", zap.Error(err))
	}
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, map[string]time.Duration{
		domain.RoleCandidate: cfg.CandidateTokenTTL,
		domain.RoleEmployer:  cfg.EmployerTokenTTL,
	})
	if err != nil {
		logger.Log.Fatal("Failed to create token manager", zap.Error(err))
	}

	// 6. Setup UseCases
	validate := validation.New()
	notificationUC := usecase.NewNotificationUsecase(repos.notifications, repos.users, validate)
	bus, err := events.NewBus(notificationUC)
	if err != nil {
		logger.Log.Fatal("Failed to subscribe event handlers", zap.Error(err))
	}

	health := map[string]usecase.Pinger{"database": repos.db}
	if redisClient != nil {
		health["redis"] = redisPinger{redisClient}
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           usecase.NewAuthUsecase(repos.users, tokens, validate),
		JobUC:            usecase.NewJobUsecase(repos.jobs, repos.applications, validate),
		ApplicationUC:    usecase.NewApplicationUsecase(repos.applications, repos.jobs, bus, validate),
		ProfileUC:        usecase.NewProfileUsecase(repos.profiles, repos.users, validate),
		CompanyProfileUC: usecase.NewCompanyProfileUsecase(repos.companies, validate),
		NotificationUC:   notificationUC,
		MessageUC:        usecase.NewMessageUsecase(repos.messages, repos.users, bus, validate),
		HealthUC:         usecase.NewHealthUsecase(health),
		Tokens:           tokens,
		Storage:          store,
		Redis:            redisClient,
		Config:           cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	// The pool closes only after in-flight requests have drained.
	if pool != nil {
		pool.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logger.Log.Info("Server exiting")
}

type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
