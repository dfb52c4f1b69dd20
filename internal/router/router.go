package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/obli137/calculasado/internal/asado"
	"github.com/obli137/calculasado/internal/auth"
	"github.com/obli137/calculasado/internal/carnicerias"
	"github.com/obli137/calculasado/internal/middleware"
	"github.com/obli137/calculasado/internal/order"
	"github.com/obli137/calculasado/internal/precios"
)

type Handlers struct {
	Auth        *auth.Handler
	Asado       *asado.Handler
	Order       *order.Handler
	Precios     *precios.Handler
	Carnicerias *carnicerias.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://calculaasado.com.ar"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── CALCULADORA ─────────────────────────
	asadoGroup := r.Group("/asado")
	{
		asadoGroup.POST("/estimacion", h.Asado.Estimacion)
		asadoGroup.POST("/distribucion", h.Asado.Distribucion)
		asadoGroup.POST("/orden", h.Order.Componer)
	}

	// ───────────────────────── PRECIOS / RESUMEN ─────────────────────────
	r.GET("/precios", h.Precios.ListPrecios)
	r.GET("/resumen", h.Order.Resumen)

	// ───────────────────────── PEDIDOS ─────────────────────────
	pedidos := r.Group("/pedidos")
	pedidos.Use(middleware.AuthMiddleware())
	{
		pedidos.POST("", h.Order.Submit)
		pedidos.GET("/me", h.Order.MisCompras)
	}

	// ───────────────────────── DONDE COMPRAR ─────────────────────────
	r.GET("/carnicerias", h.Carnicerias.List)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.PUT("/precios/:id", h.Precios.UpdatePrecio)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
