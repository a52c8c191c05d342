package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frauddash/internal/config"
	"frauddash/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	// A load failure is memoized and shown on the page, so keep serving
	_ = appContainer.Warm()

	if err := appContainer.InitHTTP(); err != nil {
		log.Fatalf("Failed to initialize HTTP server: %v", err)
	}

	go func() {
		if err := appContainer.Serve(); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	appContainer.Logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := appContainer.Shutdown(ctx); err != nil {
		appContainer.Logger.Error("shutdown failed: %v", err)
	}
}
