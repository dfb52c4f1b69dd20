package main

import (
	"log"
	"os"

	"github.com/obli137/calculasado/internal/asado"
	"github.com/obli137/calculasado/internal/auth"
	"github.com/obli137/calculasado/internal/carnicerias"
	"github.com/obli137/calculasado/internal/db"
	"github.com/obli137/calculasado/internal/order"
	"github.com/obli137/calculasado/internal/precios"
	"github.com/obli137/calculasado/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	rates := asado.ProfileByName(os.Getenv("ASADO_RATE_PROFILE"))

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	preciosRepo := precios.NewPostgresRepository(pgDB)
	pedidosRepo := order.NewPostgresRepository(pgDB)
	carniceriasRepo := carnicerias.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	orderService := order.NewService(pedidosRepo, preciosRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:        auth.NewHandler(authService),
		Asado:       asado.NewHandler(rates),
		Order:       order.NewHandler(orderService, rates),
		Precios:     precios.NewHandler(preciosRepo),
		Carnicerias: carnicerias.NewHandler(carniceriasRepo),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
