package httpserver

import (
	"context"
	"io"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/domain"
	"babyheaven-storefront/internal/instagram"
)

// CatalogReader is the slice of the content client the handlers consume.
type CatalogReader interface {
	HeroSlides(ctx context.Context) ([]domain.HeroSlide, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Products(ctx context.Context, categorySlug string) ([]domain.ProductSummary, error)
	NewProducts(ctx context.Context) ([]domain.ProductSummary, error)
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	SiteSettings(ctx context.Context) (*domain.SiteSettings, error)
	InstagramPosts(ctx context.Context) ([]domain.InstagramPost, error)
	About(ctx context.Context) (*domain.About, error)
}

// ReceiptSaver stores a payment receipt image and returns its public URL.
type ReceiptSaver interface {
	SaveReceipt(ctx context.Context, r io.Reader) (string, error)
}

// FeedReader serves the live Instagram feed.
type FeedReader interface {
	Recent(ctx context.Context) []instagram.Post
}

// Deps carries the wired collaborators for the router.
type Deps struct {
	Catalog      CatalogReader
	Feed         FeedReader   // optional; curated posts serve as fallback
	Receipts     ReceiptSaver // nil disables receipt uploads
	SessionStore func(sessionID string) cart.Storage
	CORSOrigins  []string
	// FallbackPhone receives orders when the settings document carries no
	// phone number.
	FallbackPhone string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, rdb *redis.Client, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.CORSOrigins
		corsCfg.AllowCredentials = true
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(rdb))

	h := &handlers{
		catalog:       deps.Catalog,
		feed:          deps.Feed,
		receipts:      deps.Receipts,
		fallbackPhone: deps.FallbackPhone,
		logger:        logger,
	}
	sessions := newSessionManager(deps.SessionStore, logger)

	api := router.Group("/api")
	api.GET("/hero", h.heroSlides)
	api.GET("/categories", h.categories)
	api.GET("/products", h.products)
	api.GET("/products/new", h.newProducts)
	api.GET("/products/:slug", h.productBySlug)
	api.GET("/settings", h.settings)
	api.GET("/instagram", h.instagramPosts)
	api.GET("/about", h.about)
	api.GET("/delivery/quote", h.deliveryQuote)

	scoped := api.Group("", sessions.middleware())
	scoped.GET("/cart", h.cartState)
	scoped.POST("/cart/items", h.addItem)
	scoped.PATCH("/cart/items/:id", h.setQuantity)
	scoped.DELETE("/cart/items/:id", h.removeItem)
	scoped.DELETE("/cart", h.clearCart)
	scoped.PUT("/cart/customer", h.updateCustomer)
	scoped.POST("/cart/location", h.setLocation)
	scoped.POST("/checkout/open", h.openCheckout)
	scoped.POST("/checkout/close", h.closeCheckout)
	scoped.POST("/checkout/details", h.toDetails)
	scoped.POST("/checkout/back", h.backToCart)
	scoped.POST("/checkout/receipt", h.uploadReceipt)
	scoped.POST("/checkout/submit", h.submitOrder)

	return router
}
