package main

import (
	"log"

	"go-catch-automation/internal/api"
	"go-catch-automation/internal/config"
)

func main() {
	cfg := config.Load()

	server := api.NewServer(cfg)
	defer server.Close()

	r := api.NewRouter(server)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
