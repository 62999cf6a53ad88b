package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"

	"assistant-widget/config"
	_ "assistant-widget/docs" // Swagger docs
	assistantHTTP "assistant-widget/internal/assistant/delivery/http"
	assistantUC "assistant-widget/internal/assistant/usecase"
	"assistant-widget/internal/httpserver"
	meetingHTTP "assistant-widget/internal/meeting/delivery/http"
	meetingFirestore "assistant-widget/internal/meeting/repository/firestore"
	meetingUC "assistant-widget/internal/meeting/usecase"
	"assistant-widget/internal/middleware"
	taskHTTP "assistant-widget/internal/task/delivery/http"
	taskFirestore "assistant-widget/internal/task/repository/firestore"
	taskUC "assistant-widget/internal/task/usecase"
	userHTTP "assistant-widget/internal/user/delivery/http"
	userFirestore "assistant-widget/internal/user/repository/firestore"
	userUC "assistant-widget/internal/user/usecase"
	"assistant-widget/pkg/gcalendar"
	"assistant-widget/pkg/gemini"
	"assistant-widget/pkg/log"
)

// @title       Assistant Widget API
// @description Personal-assistant chat widget with task tracking and Google Calendar meeting scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Assistant Widget...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Firestore project: %s", cfg.Firestore.ProjectID)

	// 3. Firestore
	fsClient, err := firestore.NewClientWithDatabase(ctx, cfg.Firestore.ProjectID, cfg.Firestore.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Firestore: ", err)
		return
	}
	defer fsClient.Close()

	// 4. Repositories
	userRepo := userFirestore.New(logger, fsClient)
	taskRepo := taskFirestore.New(logger, fsClient)
	meetingRepo := meetingFirestore.New(logger, fsClient)

	googleOAuth := gcalendar.OAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURI:  cfg.Google.RedirectURI,
	}

	// 5. UseCases
	usrUC := userUC.New(logger, userRepo, googleOAuth)
	tskUC := taskUC.New(logger, taskRepo, userRepo)

	astUC := assistantUC.New(logger, userRepo, tskUC, func(apiKey string) assistantUC.LLM {
		client := gemini.NewClient(apiKey)
		if cfg.LLM.Model != "" {
			client.SetModel(cfg.LLM.Model)
		}
		return client
	})
	astUC.SetLLMTimeout(cfg.LLM.Timeout)

	calendarFactory := meetingUC.NewCalendarFactory(googleOAuth)
	mtgUC := meetingUC.New(logger, meetingRepo, userRepo, tskUC, calendarFactory, cfg.Calendar.Timezone)

	// 6. Middleware
	mw := middleware.New(logger, middleware.Config{
		Environment:     cfg.Environment.Name,
		CORSOrigins:     cfg.Chat.CORSOrigins,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Middleware: mw,

		UserHandler:      userHTTP.New(logger, usrUC),
		TaskHandler:      taskHTTP.New(logger, tskUC),
		AssistantHandler: assistantHTTP.New(logger, astUC),
		MeetingHandler:   meetingHTTP.New(logger, mtgUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
