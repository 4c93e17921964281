package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"towdispatch/internal/adapter/http/routes"
	"towdispatch/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tow Dispatch API
// @version         1.0
// @description     Bookings, dispatch, supplier jobs and charges for a towing back-office.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic AdminAuth

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
