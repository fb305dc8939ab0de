package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/config"
	"github.com/Guyuepp/go-tube-engagement/internal/metrics"
	"github.com/Guyuepp/go-tube-engagement/internal/repository"
	"github.com/Guyuepp/go-tube-engagement/internal/repository/memory"
	mysqlRepo "github.com/Guyuepp/go-tube-engagement/internal/repository/mysql"
	myRedis "github.com/Guyuepp/go-tube-engagement/internal/repository/redis"
	"github.com/Guyuepp/go-tube-engagement/internal/rest"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/middleware"
	"github.com/Guyuepp/go-tube-engagement/internal/usecase/content"
	"github.com/Guyuepp/go-tube-engagement/internal/usecase/dashboard"
	"github.com/Guyuepp/go-tube-engagement/internal/usecase/engagement"
	"github.com/Guyuepp/go-tube-engagement/internal/workers"
)

const dbRetryInterval = 2 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.SetupLogger()
			return serve(cfg)
		},
	}
}

// stores is the set of repositories the usecases are built from.
type stores struct {
	likes   domain.LikeRepository
	subs    domain.SubscriptionRepository
	content domain.ContentRepository
	users   domain.UserRepository
	stats   domain.StatsRepository
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range max(cfg.DBMaxRetry, 1) {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, cfg.DBMaxRetry, err)
		time.Sleep(dbRetryInterval)
	}
	return nil, fmt.Errorf("could not connect to database after retries: %w", err)
}

func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		st        stores
		bloomRepo domain.BloomRepository
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		logrus.Warn("running on the in-memory store, nothing is persisted")
		mem := memory.NewStore()
		if cfg.StoreFixtures == "" {
			logrus.Warn("STORE_FIXTURES is not set, the memory store starts empty and every lookup is NotFound")
		} else if err := mem.LoadFixturesFile(cfg.StoreFixtures); err != nil {
			return err
		}
		st = stores{mem.Likes(), mem.Subscriptions(), mem.Content(), mem.Users(), mem.Stats()}

	default:
		// prepare database
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					logrus.Errorf("got error when closing the DB connection: %v", err)
				}
			}
		}()

		// prepare cache
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.CacheAddr(),
			Password: cfg.CachePass,
			DB:       cfg.CacheDB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("got error when closing the redis connection: %v", err)
			}
		}()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to open connection to cache: %w", err)
		}
		bloomRepo = myRedis.NewRedisBloomRepo(client, cfg.BloomFilterSize)

		// 1. DB层  2. 协调层 (布隆过滤器 + 数据库)
		userDBRepo := mysqlRepo.NewUserRepository(db)
		contentDBRepo := mysqlRepo.NewContentDBRepository(db)
		st = stores{
			likes:   mysqlRepo.NewLikeRepository(db),
			subs:    mysqlRepo.NewSubscriptionRepository(db),
			content: repository.NewContentRepository(contentDBRepo, bloomRepo),
			users:   repository.NewUserRepository(userDBRepo, bloomRepo),
			stats:   mysqlRepo.NewStatsRepository(db),
		}

		// Prepare bloom filter, then keep it fresh
		refresher := workers.NewBloomRefreshWorker(userDBRepo, contentDBRepo, bloomRepo, cfg.BloomRefreshInterval)
		if err := refresher.Seed(ctx); err != nil {
			return fmt.Errorf("failed to init bloom filter: %w", err)
		}
		go refresher.Start(ctx)
	}

	// Build service Layer
	engagementSvc := engagement.NewService(st.likes, st.subs, st.content, st.users, metrics.Toggles{})
	engagementSvc.EmptyGraphNotFound = cfg.EmptyGraphNotFound
	dashboardSvc := dashboard.NewService(st.stats, st.content)
	contentSvc := content.NewService(st.content, st.users)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestID())
	route.Use(middleware.Logger())
	route.Use(middleware.CORS(cfg.CORSOrigins))
	ginprometheus.NewPrometheus("gin").Use(route)
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	rest.RegisterRoutes(route, rest.Handlers{
		Engagement: rest.NewEngagementHandler(engagementSvc),
		Dashboard:  rest.NewDashboardHandler(dashboardSvc),
		Content:    rest.NewContentHandler(contentSvc),
	}, middleware.AuthMiddleware(cfg.JWTSecret))

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logrus.Info("Server exiting")
	return nil
}
