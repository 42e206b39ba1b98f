package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"babyheaven-storefront/internal/delivery"
	"babyheaven-storefront/internal/domain"
)

// defaultShippingCost is shown when the settings document is unreachable.
const defaultShippingCost = 120.0

type handlers struct {
	catalog       CatalogReader
	feed          FeedReader
	receipts      ReceiptSaver
	fallbackPhone string
	logger        *log.Logger
}

// Editorial sections degrade to empty sets on content failures so one
// broken section never takes down the page.

func (h *handlers) heroSlides(c *gin.Context) {
	slides, err := h.catalog.HeroSlides(c.Request.Context())
	if err != nil {
		h.logger.Printf("hero slides: %v", err)
	}
	if slides == nil {
		slides = []domain.HeroSlide{}
	}
	c.JSON(http.StatusOK, slides)
}

func (h *handlers) categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.logger.Printf("categories: %v", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) products(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.logger.Printf("products: %v", err)
	}
	if products == nil {
		products = []domain.ProductSummary{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) newProducts(c *gin.Context) {
	products, err := h.catalog.NewProducts(c.Request.Context())
	if err != nil {
		h.logger.Printf("new products: %v", err)
	}
	if products == nil {
		products = []domain.ProductSummary{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) productBySlug(c *gin.Context) {
	product, err := h.catalog.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}
	if err != nil {
		h.logger.Printf("product by slug: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catálogo no disponible"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handlers) settings(c *gin.Context) {
	c.JSON(http.StatusOK, h.siteSettings(c.Request.Context()))
}

// siteSettings loads the singleton settings document, substituting defaults
// when it is unreachable and the fallback phone when none is configured.
func (h *handlers) siteSettings(ctx context.Context) domain.SiteSettings {
	settings, err := h.catalog.SiteSettings(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Printf("site settings: %v", err)
		}
		return domain.SiteSettings{
			Phone:        h.fallbackPhone,
			ShippingInfo: domain.ShippingInfo{DefaultShippingCost: defaultShippingCost},
		}
	}
	out := *settings
	if out.Phone == "" {
		out.Phone = h.fallbackPhone
	}
	return out
}

// instagramPosts prefers the live feed and falls back to the curated posts
// kept in the content store.
func (h *handlers) instagramPosts(c *gin.Context) {
	if h.feed != nil {
		if posts := h.feed.Recent(c.Request.Context()); len(posts) > 0 {
			c.JSON(http.StatusOK, posts)
			return
		}
	}
	posts, err := h.catalog.InstagramPosts(c.Request.Context())
	if err != nil {
		h.logger.Printf("instagram posts: %v", err)
	}
	if posts == nil {
		posts = []domain.InstagramPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *handlers) about(c *gin.Context) {
	about, err := h.catalog.About(c.Request.Context())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Printf("about: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *handlers) deliveryQuote(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat y lng son requeridos"})
		return
	}
	fee := delivery.PriceFor(lat, lng)
	c.JSON(http.StatusOK, gin.H{"fee": fee, "formatted": delivery.FormatPrice(fee)})
}
