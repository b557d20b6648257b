package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Builder-Lawyers/text-corrector/internal/application"
	"github.com/Builder-Lawyers/text-corrector/internal/application/commands"
	ai "github.com/Builder-Lawyers/text-corrector/internal/infra/client/openai"
	"github.com/Builder-Lawyers/text-corrector/internal/infra/config"
	"github.com/Builder-Lawyers/text-corrector/internal/infra/logger"
	"github.com/Builder-Lawyers/text-corrector/internal/presentation/rest"
	"github.com/Builder-Lawyers/text-corrector/internal/presentation/rest/views"
	"github.com/Builder-Lawyers/text-corrector/pkg/env"
	"go.uber.org/zap"
)

func Init() {
	// Configs
	if err := env.Load(".env"); err != nil {
		log.Panic(err)
	}
	serverConfig := config.NewServerConfig()
	openAIConfig := ai.NewOpenAIConfig()

	appLogger, err := logger.New(serverConfig.LogLevel)
	if err != nil {
		log.Panic(err)
	}
	defer func() { _ = appLogger.Sync() }()
	if openAIConfig.APIKey == "" {
		appLogger.Warn("OPENAI_KEY is not set, every correction will fail")
	}

	handlers := &application.Handlers{
		CorrectText: commands.NewCorrectText(ai.NewOpenAIClient(openAIConfig), appLogger),
	}
	server := rest.NewServer(handlers, appLogger)
	app := rest.NewApp(server, views.New())

	go func() {
		appLogger.Info("Server started", zap.String("port", serverConfig.Port))
		if err := app.Listen(serverConfig.Addr()); err != nil {
			appLogger.Panic("server stopped", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	_ = <-c
	appLogger.Info("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("shutdown failed", zap.Error(err))
	}
	appLogger.Info("Fiber was successfully shutdown.")
}
