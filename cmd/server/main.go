package main

import (
	"github.com/joho/godotenv"

	"paybill/internal/app/server"
)

func main() {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	server.Run()
}
