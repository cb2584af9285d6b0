package di

import (
	"context"
	"time"

	"farmer-assist/backend/internal/adapter"
	"farmer-assist/backend/internal/repository"
	"farmer-assist/backend/internal/service"
	"farmer-assist/backend/pkg/cache"
	"farmer-assist/backend/pkg/config"
	"farmer-assist/backend/pkg/health"
	"farmer-assist/backend/pkg/logger"
	"farmer-assist/backend/pkg/token"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application
type Container struct {
	Config         *config.Config
	DB             *gorm.DB
	Logger         *logger.Logger
	Cache          cache.Store
	TokenService   *token.Service
	SessionRepo    repository.SessionRepository
	MessageRepo    repository.MessageRepository
	UserRepo       repository.UserRepository
	WeatherAdapter *adapter.WeatherAdapter
	MarketAdapter  *adapter.MarketAdapter
	ChatService    *service.ChatService
	HealthChecker  *health.Checker
}

// New creates a new dependency injection container
func New(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Container, error) {
	// Redis first, in-memory when unreachable so lookups still benefit
	// from short-lived caching within the process
	var store cache.Store
	redisStore := cache.NewRedisStore(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisStore.Ping(pingCtx); err != nil {
		log.Warn("Redis not available, using in-memory cache", "addr", cfg.RedisAddr(), "error", err.Error())
		store = cache.NewMemoryStore(10 * time.Minute)
	} else {
		store = redisStore
	}

	tokenService := token.NewService(cfg.SecretKey, 0)

	sessionRepo := repository.NewGormSessionRepository(db)
	messageRepo := repository.NewGormMessageRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	llmAdapter := adapter.NewOpenAIAdapter(cfg.API.OpenAIKey, cfg.API.Timeout)
	diseaseAdapter := adapter.NewHuggingFaceAdapter(cfg.API.HuggingFaceKey, "", cfg.API.Timeout)
	weatherAdapter := adapter.NewWeatherAdapter(cfg.API.WeatherKey, "", store, cfg.Cache.WeatherTTL, cfg.API.Timeout, log)
	marketAdapter := adapter.NewMarketAdapter(cfg.API.MarketURL, store, cfg.Cache.MarketTTL, cfg.API.Timeout, log)

	classifier := service.NewIntentClassifier(cfg.Intents)

	chatService := service.NewChatService(
		classifier,
		llmAdapter,
		diseaseAdapter,
		weatherAdapter,
		marketAdapter,
		sessionRepo,
		messageRepo,
		userRepo,
		tokenService,
		log,
	)

	checker := health.NewChecker(log, 30*time.Second)
	checker.RegisterDatabaseCheck(func() error {
		return config.TestConnection(db)
	})
	checker.RegisterCacheCheck(store.Ping)
	checker.Start()

	return &Container{
		Config:         cfg,
		DB:             db,
		Logger:         log,
		Cache:          store,
		TokenService:   tokenService,
		SessionRepo:    sessionRepo,
		MessageRepo:    messageRepo,
		UserRepo:       userRepo,
		WeatherAdapter: weatherAdapter,
		MarketAdapter:  marketAdapter,
		ChatService:    chatService,
		HealthChecker:  checker,
	}, nil
}
