package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"noteboard/internal/board"
	"noteboard/internal/config"
	"noteboard/internal/handler"
	"noteboard/internal/middleware"
	"noteboard/internal/repository"
)

type Server struct {
	Engine *gin.Engine
	Board  *board.Manager
	Config *config.Config
	Logger *log.Logger

	closers []func() error
}

func Init(cfg *config.Config, logger *log.Logger) (*Server, error) {
	s := &Server{Config: cfg, Logger: logger}

	store, err := s.openStore(context.Background())
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Board = board.NewManager(store, board.Options{
		AllowColor:              cfg.CardColor,
		AllowRemove:             cfg.CardRemove,
		IgnoreCapWhileFiltering: cfg.FilterBypassCap,
	}, logger)
	s.Board.Load(context.Background())

	s.Engine = NewRouter(cfg, handler.NewBoardHandler(s.Board, logger))
	return s, nil
}

// NewRouter wires the board routes. Mutations require a bearer token when a
// JWT secret is configured.
func NewRouter(cfg *config.Config, boardHandler *handler.BoardHandler) *gin.Engine {
	r := gin.Default()

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AddAllowHeaders("Authorization")
		corsCfg.AddAllowMethods("PATCH")
		r.Use(cors.New(corsCfg))
	} else {
		r.Use(cors.Default())
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/board", boardHandler.Get)

	authorized := r.Group("/")
	if cfg.JWTSecret != "" {
		authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	}
	{
		authorized.POST("/columns/:index/cards", boardHandler.AddCard)

		authorized.PATCH("/cards/:id", boardHandler.UpdateCard)
		authorized.DELETE("/cards/:id", boardHandler.RemoveCard)

		authorized.POST("/cards/:id/items", boardHandler.AddItem)
		authorized.PATCH("/cards/:id/items/:index", boardHandler.UpdateItem)
		authorized.POST("/cards/:id/items/:index/toggle", boardHandler.ToggleItem)
	}
	return r
}

func (s *Server) openStore(ctx context.Context) (board.Store, error) {
	cfg := s.Config
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return repository.NewMemoryStore(cfg.StorageKey), nil

	case config.BackendPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		s.Logger.Info("✅ Connected to database", "host", cfg.DBHost, "db", cfg.DBName)
		if sqlDB, err := db.DB(); err == nil {
			s.closers = append(s.closers, sqlDB.Close)
		}
		repo, err := repository.NewSnapshotRepository(db, cfg.StorageKey)
		if err != nil {
			return nil, err
		}
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate snapshots table: %w", err)
		}
		return repo, nil

	case config.BackendSQLite:
		store, err := repository.OpenSQLiteStore(cfg.SQLitePath, cfg.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("❌ failed to open sqlite store: %w", err)
		}
		s.closers = append(s.closers, store.Close)
		s.Logger.Info("✅ Opened sqlite store", "path", cfg.SQLitePath)
		return store, nil

	case config.BackendS3:
		client, err := repository.NewS3Client(ctx, repository.S3Config{
			Endpoint:     cfg.S3Endpoint,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to init S3: %w", err)
		}
		s.Logger.Info("✅ Using S3 store", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return repository.NewS3Store(client, cfg.S3Bucket, cfg.StorageKey)

	default:
		return nil, fmt.Errorf("❌ unknown storage backend %q", cfg.StorageBackend)
	}
}

// Close releases the storage connections.
func (s *Server) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Logger.Info("🚀 Server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal("❌ Failed to listen", "err", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Fatal("❌ Server forced to shutdown", "err", err)
	}
	if err := s.Close(); err != nil {
		s.Logger.Warn("failed to close storage", "err", err)
	}

	s.Logger.Info("✅ Server exited properly")
}
