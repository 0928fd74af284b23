package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"hrmobile/internal/devserver"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	addr := os.Getenv("DEVSERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	secret := os.Getenv("DEVSERVER_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
	}

	server := devserver.New(secret)
	log.Printf("dev HR API listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
