package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/domain"
)

func receiptPatch(url string) cart.DraftPatch {
	return cart.DraftPatch{ReceiptURL: &url}
}

func (h *handlers) openCheckout(c *gin.Context) {
	sess := currentSession(c)
	sess.flow.Open()
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) closeCheckout(c *gin.Context) {
	sess := currentSession(c)
	sess.flow.Close(c.Request.Context())
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) toDetails(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.flow.ToDetails(); err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "el carrito está vacío"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *handlers) backToCart(c *gin.Context) {
	sess := currentSession(c)
	sess.flow.Back()
	c.JSON(http.StatusOK, viewOf(sess))
}

// uploadReceipt stores the transfer receipt and records its URL on the
// draft so submit can require it for transfer payments.
func (h *handlers) uploadReceipt(c *gin.Context) {
	if h.receipts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "la carga de comprobantes no está disponible"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "adjunte la imagen del comprobante"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se pudo leer la imagen"})
		return
	}
	defer src.Close()

	url, err := h.receipts.SaveReceipt(c.Request.Context(), src)
	if err != nil {
		h.logger.Printf("upload receipt: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "no se pudo guardar el comprobante"})
		return
	}

	sess := currentSession(c)
	sess.store.UpdateDraft(c.Request.Context(), receiptPatch(url))
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// submitOrder runs the batch validation and answers with the WhatsApp
// dispatch link. The cart survives submission; the shopper may come back.
func (h *handlers) submitOrder(c *gin.Context) {
	sess := currentSession(c)
	settings := h.siteSettings(c.Request.Context())

	url, err := sess.flow.Submit(settings)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			return
		}
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "el carrito está vacío"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"whatsappUrl": url})
}
