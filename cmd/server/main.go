package main

import (
	"fmt"
	"log"

	"sentinelrisk/internal/config"
	"sentinelrisk/internal/database"
	"sentinelrisk/internal/server"
)

func main() {
	cfg := config.Load()
	db := database.Open(cfg.DBDSN)
	store := database.NewStore(db)

	r := server.NewRouter(cfg, store)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
