package main

import (
	"innkeep/config"
	"innkeep/di"
	"innkeep/shared/logger"
)

// @title Innkeep API
// @version 1.0
// @description Hotel room, guest and booking management service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
