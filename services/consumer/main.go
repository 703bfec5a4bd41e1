package main

import (
	"os"
	"os/signal"
	"syscall"

	"pulse-feed/pkg/config"
	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"
	"pulse-feed/services/consumer/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	eventHandler := handler.NewEventHandler(log)

	for _, topic := range queue.Topics {
		if err := queueClient.Consume(topic, eventHandler.Handle); err != nil {
			log.Error("Failed to start consumer for %s: %v", topic, err)
			panic(err)
		}
	}

	log.Info("Event consumer started, waiting for events...")

	// Wait for interrupt signal to shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down event consumer...")

	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	log.Info("Event consumer exited")
}
