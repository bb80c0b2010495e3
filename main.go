package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/articret/coffee-shop-server/handlers"
	"github.com/articret/coffee-shop-server/internal/cache"
	"github.com/articret/coffee-shop-server/internal/coffee/repository"
	"github.com/articret/coffee-shop-server/internal/coffee/service"
	"github.com/articret/coffee-shop-server/internal/config"
	"github.com/articret/coffee-shop-server/internal/database"
	"github.com/articret/coffee-shop-server/internal/server"
	"github.com/articret/coffee-shop-server/internal/storage"
	"github.com/articret/coffee-shop-server/internal/users"
	"github.com/articret/coffee-shop-server/pkg/logger"
	"github.com/articret/coffee-shop-server/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	started := time.Now()
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	if cfg.Server.IsProduction() {
		logger.SetJSON(true)
		gin.SetMode(gin.ReleaseMode)
	}
	defer logger.Sync()
	logger.Infof("config loaded: env=%s mongo=%v redis=%v minio=%v", cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Redis.Addr() != "", cfg.Storage.Endpoint != "")

	ctx := context.Background()
	checks := map[string]handlers.Check{}

	// MongoDB with retry; fall back to in-memory repositories when unreachable
	var coffeeRepo repository.Repository
	var userRepo users.UserRepository
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		mongoClient, err = database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second)
		if err != nil {
			logger.Warnf("%v; serving from memory", err)
		}
	}
	if mongoClient != nil {
		db := mongoClient.Database(cfg.MongoDB.Database)
		mrepo := repository.NewMongoRepo(db.Collection(cfg.MongoDB.CoffeesCollection))
		urepo := users.NewMongoUserRepository(db.Collection(cfg.MongoDB.UsersCollection))
		if err := mrepo.EnsureIndexes(ctx); err != nil {
			logger.Warnf("coffee indexes: %v", err)
		}
		if err := urepo.EnsureIndexes(ctx); err != nil {
			logger.Warnf("user indexes: %v", err)
		}
		coffeeRepo, userRepo = mrepo, urepo
		checks["mongo"] = database.Ping(mongoClient)
		logger.Infof("connected to MongoDB database %s", cfg.MongoDB.Database)
	} else {
		coffeeRepo, userRepo = repository.NewMemoryRepo(), users.NewMemoryUserRepository()
		logger.Warnf("MongoDB not available; data will not survive a restart")
	}

	// Redis read-through cache for single-coffee lookups
	var redisClient *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v; caching disabled", addr, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			coffeeRepo = repository.NewCachedRepo(coffeeRepo, cache.NewRedisCache(redisClient, "coffee:", cfg.Cache.TTL))
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
			logger.Infof("coffee cache enabled on %s (ttl=%s)", addr, cfg.Cache.TTL)
		}
	}

	// photo storage: MinIO when configured, otherwise process memory
	var photos handlers.PhotoStore
	if cfg.Storage.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(ctx, cfg.Storage)
		if err != nil {
			logger.Warnf("MinIO unavailable (%s): %v; photos kept in memory", cfg.Storage.Endpoint, err)
			photos = storage.NewMemoryStorage()
		} else {
			photos = ms
			checks["storage"] = ms.Ping
		}
	} else {
		photos = storage.NewMemoryStorage()
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := server.New(server.Deps{
		Coffees:       service.New(coffeeRepo),
		Users:         users.NewService(userRepo),
		Photos:        photos,
		MaxPhotoBytes: cfg.Storage.MaxPhotoBytes,
		Checks:        checks,
		Started:       started,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("Coffee shop server is running on port: %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Infof("received %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown: %v", err)
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logger.Infof("server stopped")
}
