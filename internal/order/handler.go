package order

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obli137/calculasado/internal/asado"
)

type Handler struct {
	service *Service
	rates   asado.RateProfile
}

func NewHandler(service *Service, rates asado.RateProfile) *Handler {
	return &Handler{service: service, rates: rates}
}

type componerRequest struct {
	Hombres    int                `json:"hombres"`
	Mujeres    int                `json:"mujeres"`
	Ninos      int                `json:"ninos"`
	AlPan      bool               `json:"al_pan"`
	Cortes     map[string]float64 `json:"cortes"`
	Achuras    map[string]float64 `json:"achuras"`
	ChorizoPct *float64           `json:"chorizo_pct"`
}

// --------------------------------------------------
// POST /asado/orden
// --------------------------------------------------
func (h *Handler) Componer(c *gin.Context) {
	var req componerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	alloc, err := asado.AllocationFromMaps(req.Cortes, req.Achuras)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, asado.ErrPresupuestoExcedido) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	party := asado.Party{Hombres: req.Hombres, Mujeres: req.Mujeres, Ninos: req.Ninos}
	est := asado.NewEstimate(party, req.AlPan, h.rates)

	split := asado.DefaultSplit
	if req.ChorizoPct != nil {
		split = asado.NewEmbutidoSplit(*req.ChorizoPct)
	}

	orden, err := Compose(est, alloc, split)
	if err != nil {
		// Incomplete allocation blocks the purchase with a corrective message.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	param, err := EncodeParam(orden)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode orden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orden": orden,
		"param": param,
		"url":   "/resumen?orden=" + param,
	})
}

// --------------------------------------------------
// GET /resumen?orden=...
// --------------------------------------------------
func (h *Handler) Resumen(c *gin.Context) {
	orden, err := DecodeParam(c.Query("orden"))
	if err != nil {
		// Malformed handoff data renders an error, it never crashes the view.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.Resumen(c.Request.Context(), orden)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no se pudieron cargar los precios"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orden":   orden,
		"resumen": quote,
	})
}

type submitRequest struct {
	Orden     string `json:"orden"`
	Direccion struct {
		Calle        string `json:"calle"`
		Numero       string `json:"numero"`
		Ciudad       string `json:"ciudad"`
		CodigoPostal string `json:"codigo_postal"`
		Telefono     string `json:"telefono"`
		Notas        string `json:"notas"`
		MetodoPago   string `json:"metodo_pago"`
		FechaEntrega string `json:"fecha_entrega"`
	} `json:"direccion"`
}

// --------------------------------------------------
// POST /pedidos  (auth required)
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrNoAutenticado.Error()})
		return
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	orden, err := DecodeParam(req.Orden)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fecha, err := time.Parse(time.RFC3339, req.Direccion.FechaEntrega)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha de entrega inválida"})
		return
	}

	dir := DireccionEnvio{
		Calle:        req.Direccion.Calle,
		Numero:       req.Direccion.Numero,
		Ciudad:       req.Direccion.Ciudad,
		CodigoPostal: req.Direccion.CodigoPostal,
		Telefono:     req.Direccion.Telefono,
		Notas:        req.Direccion.Notas,
		MetodoPago:   req.Direccion.MetodoPago,
		FechaEntrega: fecha,
	}

	pedido, err := h.service.Submit(c.Request.Context(), userID, orden, dir)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoAutenticado):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, ErrDireccionIncompleta):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrSubmitFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrSubmitFailed.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, pedido)
}

// --------------------------------------------------
// GET /pedidos/me  (auth required)
// --------------------------------------------------
func (h *Handler) MisCompras(c *gin.Context) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return
	}

	pedidos, err := h.service.ListMisCompras(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch compras"})
		return
	}

	c.JSON(http.StatusOK, pedidos)
}
