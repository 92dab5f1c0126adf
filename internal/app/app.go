// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"reddit-radar/internal/client"
	"reddit-radar/internal/collector"
	"reddit-radar/internal/config"
	"reddit-radar/internal/export"
	"reddit-radar/internal/parser"
	"reddit-radar/internal/router"
	"reddit-radar/internal/scheduler"
)

type App struct {
	Config    *config.Config
	Echo      *echo.Echo
	Service   collector.CollectorService
	Client    *client.RedditClient
	Parser    parser.ParserInterface
	Writer    *export.Writer
	Scheduler *scheduler.Scheduler

	logFile *os.File
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile := setupLogger(cfg)

	redditClient, err := client.NewRedditClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	redditParser := parser.NewRedditParser()
	counters := collector.NewRunCounters()
	limiter := collector.NewRateLimiter(cfg.ListingDelay, cfg.CommentDelay, counters)
	commentCollector := collector.NewCommentCollector(redditClient, redditParser, limiter, counters, cfg.Filter)
	service := collector.NewPostCollector(redditClient, redditParser, limiter, counters, commentCollector, cfg.SubredditPause)
	writer := export.NewWriter(cfg.RawDataDir)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	router.NewRouter(e, service, writer, cfg)

	return &App{
		Config:    cfg,
		Echo:      e,
		Service:   service,
		Client:    redditClient,
		Parser:    redditParser,
		Writer:    writer,
		Scheduler: scheduler.New(service, writer, cfg),
		logFile:   logFile,
	}, nil
}

func (a *App) Start() error {
	if err := a.Scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	return a.Echo.Start(":" + port)
}

// Shutdown stops the scheduler, drains the HTTP server and closes the log file.
func (a *App) Shutdown(ctx context.Context) error {
	a.Scheduler.Stop()

	err := a.Echo.Shutdown(ctx)

	if a.logFile != nil {
		a.logFile.Close()
	}
	return err
}

// setupLogger installs the default slog logger writing to stdout and, when a
// log file is configured, to that file as well. Returns the open file, if any.
func setupLogger(cfg *config.Config) *os.File {
	var out io.Writer = os.Stdout
	var logFile *os.File

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err == nil {
			if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				logFile = f
				out = io.MultiWriter(os.Stdout, f)
			} else {
				fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", cfg.LogFile, err)
			}
		} else {
			fmt.Fprintf(os.Stderr, "cannot create log directory for %s: %v\n", cfg.LogFile, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	return logFile
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
