package main

import (
	"go.uber.org/zap"

	"shorturlweb/internal/app"
	"shorturlweb/internal/buildinfo"
	"shorturlweb/internal/server"
)

// Информация о сборке, подставляется через ldflags.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Print()

	// Инициализация логгера
	logger, cleanup := server.InitLogger()
	defer cleanup()

	// Инициализация конфигурации
	cfg := server.InitConfig(logger)

	// Создание приложения
	application, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal("Error creating application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("Error closing application", zap.Error(err))
		}
	}()

	// Запуск сервера
	srv := server.NewHTTPServer(application.GetServer(), cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
