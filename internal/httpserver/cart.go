package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/catalog"
	"babyheaven-storefront/internal/checkout"
	"babyheaven-storefront/internal/domain"
)

// cartView is the payload returned by every cart and checkout mutation so
// the client never needs a follow-up read.
type cartView struct {
	Lines       []domain.CartLine    `json:"lines"`
	TotalItems  int                  `json:"totalItems"`
	TotalPrice  float64              `json:"totalPrice"`
	Open        bool                 `json:"open"`
	Step        checkout.Step        `json:"step"`
	Customer    domain.CustomerDraft `json:"customer"`
	DeliveryFee float64              `json:"deliveryFee"`
}

func viewOf(s *session) cartView {
	lines := s.store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartView{
		Lines:       lines,
		TotalItems:  s.store.TotalItems(),
		TotalPrice:  s.store.TotalPrice(),
		Open:        s.store.IsOpen(),
		Step:        s.flow.Step(),
		Customer:    s.store.Draft(),
		DeliveryFee: s.flow.DeliveryFee(),
	}
}

func (h *handlers) cartState(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(currentSession(c)))
}

func (h *handlers) addItem(c *gin.Context) {
	var req struct {
		Slug         string              `json:"slug"`
		Quantity     int                 `json:"quantity"`
		VariantIndex *int                `json:"variantIndex"`
		Options      map[string][]string `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug es requerido"})
		return
	}

	product, err := h.catalog.ProductBySlug(c.Request.Context(), req.Slug)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}
	if err != nil {
		h.logger.Printf("add item: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catálogo no disponible"})
		return
	}

	sel := catalog.Selection{VariantIndex: req.VariantIndex, Options: req.Options}
	line, err := catalog.Resolve(*product, sel, req.Quantity)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	sess := currentSession(c)
	if err := sess.store.AddItem(c.Request.Context(), line, quantity); err != nil {
		var serr *domain.StockError
		if errors.As(err, &serr) {
			c.JSON(http.StatusConflict, gin.H{"error": serr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) setQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity es requerido"})
		return
	}

	sess := currentSession(c)
	err := sess.store.SetQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if errors.Is(err, domain.ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "artículo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) removeItem(c *gin.Context) {
	sess := currentSession(c)
	sess.store.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) clearCart(c *gin.Context) {
	sess := currentSession(c)
	sess.store.Clear(c.Request.Context())
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) updateCustomer(c *gin.Context) {
	var patch cart.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo inválido"})
		return
	}
	sess := currentSession(c)
	draft := sess.store.UpdateDraft(c.Request.Context(), patch)
	c.JSON(http.StatusOK, gin.H{"customer": draft, "deliveryFee": sess.flow.DeliveryFee()})
}

func (h *handlers) setLocation(c *gin.Context) {
	var req struct {
		Address string  `json:"address"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address, lat y lng son requeridos"})
		return
	}
	sess := currentSession(c)
	draft := sess.store.SetDeliveryLocation(c.Request.Context(), req.Address, domain.Coordinates{Lat: req.Lat, Lng: req.Lng})
	c.JSON(http.StatusOK, gin.H{"customer": draft, "deliveryFee": sess.flow.DeliveryFee()})
}
