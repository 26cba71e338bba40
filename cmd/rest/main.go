package main

import (
	"context"
	"log"

	"dp-ai-be/internal/bootstrap"
	"dp-ai-be/internal/config"
	"dp-ai-be/internal/server"
	"dp-ai-be/internal/tracer"
)

func main() {
	// 1. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(cfg)

	// 4. Background transcript consumer
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background consumer error: %v", err)
	}

	// 5. Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
