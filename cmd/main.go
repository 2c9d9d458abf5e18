// cmd/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"jp_wordbook/internal/assets"
	"jp_wordbook/internal/config"
	"jp_wordbook/internal/handlers"
	"jp_wordbook/internal/repository"
	"jp_wordbook/internal/service"
	"jp_wordbook/internal/words"
	"jp_wordbook/web"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig("configs", "../configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level, tempLogger)
	log.Println("Log Config Loaded...")
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 単語リスト
	catalog, err := words.Load()
	if err != nil {
		slog.Error("Error loading word list", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Word list loaded", slog.Int("words", catalog.Len()))

	// DB（進捗スナップショットの保存先）
	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 静的ファイル
	contentRoot, err := contentFS(cfg.Server.ContentRoot)
	if err != nil {
		slog.Error("Error opening content root", slog.String("content_root", cfg.Server.ContentRoot), slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	kvRepo := repository.NewGormKVRepository(db, logger)
	wordService := service.NewWordService(catalog)
	progressService := service.NewProgressService(kvRepo, catalog)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})

	r := handlers.NewRouter(handlers.RouterDeps{
		Logger:         logger,
		Words:          handlers.NewWordHandler(wordService),
		Progress:       handlers.NewProgressHandler(progressService),
		Assets:         assets.NewServer(contentRoot, cfg.Server.Index, logger),
		Health:         kvRepo,
		APIMiddlewares: []func(http.Handler) http.Handler{corsHandler.Handler},
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second, // wasm の配信に余裕を持たせる
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のロガーを作ります
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo) // 不明な場合はInfo
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// contentFS は CONTENT_ROOT が指定されていればそのディレクトリ、無ければ埋め込みの web/static を返します
func contentFS(root string) (fs.FS, error) {
	if root == "" {
		return web.Static(), nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: root, Err: errors.New("not a directory")}
	}
	return os.DirFS(root), nil
}
