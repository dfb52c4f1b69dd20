package precios

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /precios
// --------------------------------------------------
func (h *Handler) ListPrecios(c *gin.Context) {
	tipos, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch precios"})
		return
	}

	c.JSON(http.StatusOK, tipos)
}

// --------------------------------------------------
// PUT /admin/precios/:id  (ADMIN)
// --------------------------------------------------
func (h *Handler) UpdatePrecio(c *gin.Context) {
	var req struct {
		PrecioKg float64 `json:"precio_kg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PrecioKg < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "precio_kg must be non-negative"})
		return
	}

	err := h.repo.UpdatePrecio(c.Request.Context(), c.Param("id"), req.PrecioKg)
	if err != nil {
		if errors.Is(err, ErrTipoCarneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update precio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "precio_kg": req.PrecioKg})
}
