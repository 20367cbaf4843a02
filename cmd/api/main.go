package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/config"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/database"
	"github.com/venkateshmacherla/Job-Portal-Web-Application/internal/router"
)

func main() {
	// 1. Load Environment Variables (optional .env for local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database Connection + schema migration
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 3. Router: sessions, services, handlers, routes
	eng := router.New(cfg.SessionSecret, db, "web/templates/*")

	log.Printf("🚀 Server starting on %s...", cfg.Addr)
	if err := eng.Run(cfg.Addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
