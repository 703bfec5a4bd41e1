package main

import (
	"pulse-feed/pkg/cache"
	"pulse-feed/pkg/config"
	"pulse-feed/pkg/logger"
	internal "pulse-feed/services/gateway/internal/app"
)

// @title           Pulse Feed API Gateway
// @version         1.0
// @description     REST gateway for the pulse-feed content service

// @host      localhost:8001
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	internal.Run(cfg, log, redisClient)
}
