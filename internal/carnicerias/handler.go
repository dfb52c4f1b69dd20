package carnicerias

import (
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
// GET /carnicerias?ciudad=...
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	carnicerias, err := h.repo.List(c.Request.Context(), c.Query("ciudad"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch carnicerias"})
		return
	}

	c.JSON(http.StatusOK, carnicerias)
}
