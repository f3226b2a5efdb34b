package main

import (
	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

// @title Lodge API
// @version 1.0
// @description Property booking backend with pricing, occupancy, and payment tracking.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
