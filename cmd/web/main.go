package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	apphttp "promosur.cl/app/internal/http"
	"promosur.cl/app/internal/localstore"
	"promosur.cl/app/internal/modules/cart"
	"promosur.cl/app/internal/modules/catalog"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Static catalog: loaded once, read-only afterwards.
	src, err := catalog.FromEnv()
	if err != nil {
		log.Fatalf("catalog source: %v", err)
	}
	products, err := src.Source.Load(context.Background())
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	logger.Info("catalog_loaded", slog.String("driver", src.Driver), slog.Int("products", len(products)))

	engine := catalog.NewEngine(products)

	// Durable cart storage and the single cart instance.
	cs, err := localstore.FromEnv()
	if err != nil {
		log.Fatalf("cart storage: %v", err)
	}
	store := cart.NewStore(cs.Store, logger)
	provider := cart.NewProvider(store)
	logger.Info("cart_ready", slog.String("driver", cs.Driver), slog.Int("items", store.TotalItems()))

	r := apphttp.NewRouter(logger, engine, provider)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	_ = r.Run(addr)
}
