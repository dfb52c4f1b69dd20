package asado

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	rates RateProfile
}

func NewHandler(rates RateProfile) *Handler {
	return &Handler{rates: rates}
}

type estimacionRequest struct {
	Hombres int  `json:"hombres"`
	Mujeres int  `json:"mujeres"`
	Ninos   int  `json:"ninos"`
	AlPan   bool `json:"al_pan"`
}

// --------------------------------------------------
// POST /asado/estimacion
// --------------------------------------------------
func (h *Handler) Estimacion(c *gin.Context) {
	var req estimacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	party := Party{Hombres: req.Hombres, Mujeres: req.Mujeres, Ninos: req.Ninos}
	est := NewEstimate(party, req.AlPan, h.rates)

	c.JSON(http.StatusOK, est)
}

type distribucionRequest struct {
	estimacionRequest
	Cortes     map[string]float64 `json:"cortes"`
	Achuras    map[string]float64 `json:"achuras"`
	ChorizoPct *float64           `json:"chorizo_pct"`
}

type distribucionResponse struct {
	CarneKg     float64            `json:"carne_kg"`
	CortesKg    map[string]float64 `json:"cortes_kg"`
	AchurasKg   map[string]float64 `json:"achuras_kg"`
	Chorizos    int                `json:"chorizos"`
	Morcillas   int                `json:"morcillas"`
	PanKg       float64            `json:"pan_kg"`
	RestantePct float64            `json:"restante_pct"`
}

// --------------------------------------------------
// POST /asado/distribucion
// --------------------------------------------------
func (h *Handler) Distribucion(c *gin.Context) {
	var req distribucionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	alloc, err := AllocationFromMaps(req.Cortes, req.Achuras)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrPresupuestoExcedido) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	party := Party{Hombres: req.Hombres, Mujeres: req.Mujeres, Ninos: req.Ninos}
	est := NewEstimate(party, req.AlPan, h.rates)

	split := DefaultSplit
	if req.ChorizoPct != nil {
		split = NewEmbutidoSplit(*req.ChorizoPct)
	}
	chorizos, morcillas := split.Units(est.EmbutidoUnits)

	cortesKg, achurasKg := alloc.Distribute(est.CarneKg)

	c.JSON(http.StatusOK, distribucionResponse{
		CarneKg:     est.CarneKg,
		CortesKg:    cortesKg,
		AchurasKg:   achurasKg,
		Chorizos:    chorizos,
		Morcillas:   morcillas,
		PanKg:       est.PanKg,
		RestantePct: alloc.Restante(),
	})
}
