package main

import (
	"os"

	_ "noteboard/docs"
	"noteboard/internal/config"
	"noteboard/internal/logging"
	"noteboard/internal/server"
)

// @title           Note Board API
// @version         1.0
// @description     Three-column checklist board with automatic card promotion.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("❌ Server initialization failed", "err", err)
	}

	s.Run()
}
