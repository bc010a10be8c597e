// Package main is the entry point for the pantry-service application.
//
// @title           Pantry Service API
// @version         1.0.0
// @description     Household pantry inventory with package-level tracking.
//
//	Stock is grouped by item and original package size. Moves, spoilage, eating and
//	cooking are planned as package diffs and applied atomically.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pantry-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key guarding the identity headers. Required when API keys are configured.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Household access token: "Bearer {token}".
//
// @tag.name        Inventory
// @tag.description Stock, transfers, eating and cooking
//
// @tag.name        Locations
// @tag.description Storage locations and units
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/pantry-service/docs" // swagger docs

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	cfg, err := config.LoadWithFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	router, closeApp := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server)

	err = server.Run()
	closeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
