package main

import (
	"pulse-feed/pkg/config"
	"pulse-feed/pkg/database"
	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"
	internal "pulse-feed/services/content/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	internal.Run(cfg, log, db, queueClient)
}
