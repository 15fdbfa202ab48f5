package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"food-checker/api/internal/assess"
	"food-checker/api/internal/assess/gemini"
	"food-checker/api/internal/assess/mock"
	"food-checker/api/internal/catalog"
	"food-checker/api/internal/config"
	"food-checker/api/internal/handle"
	"food-checker/api/internal/httpserver"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	cat := catalog.Default()
	engine := newEngine(cfg, cat)
	log.Printf("assessment engine: %s", engine.Name())

	h := handle.New(engine, cat)
	router := httpserver.New(h)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("food-checker listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server exited")
}

// newEngine picks the assessment strategy: gemini when configured, the mock
// simulator otherwise. ANALYZE_ENGINE overrides the choice.
func newEngine(cfg *config.Config, cat catalog.Catalog) assess.Engine {
	useMock := cfg.Engine == "mock" || (cfg.Engine == "" && cfg.GeminiAPIKey == "")
	if useMock {
		if cfg.GeminiAPIKey == "" {
			log.Print("GEMINI_API_KEY is not set, falling back to the mock engine")
		}
		return mock.New(cat, rand.NewSource(time.Now().UnixNano()))
	}
	return gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
}
