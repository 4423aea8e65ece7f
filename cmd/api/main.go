package main

import (
	"dental_lab/internal/adapter/http/routes"
	"dental_lab/internal/config"
	"dental_lab/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dental Lab API
// @version         1.0
// @description     Work-order builder, catalog and reporting for dental laboratories, backed by DynamoDB.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey OwnerID
// @in header
// @name X-Owner-ID
// @description Laboratory (owner) id, set by the upstream gateway after authentication.

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(cfg, log); err != nil {
		log.WithError(err).Fatal("failed to start the application")
	}
}
