package content

import (
	"context"
	"fmt"

	"babyheaven-storefront/internal/domain"
)

// HeroSlides returns the landing carousel in display order.
func (c *Client) HeroSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	var slides []domain.HeroSlide
	if err := c.Query(ctx, heroQuery, nil, &slides); err != nil {
		return nil, fmt.Errorf("hero slides: %w", err)
	}
	return slides, nil
}

// Categories returns all categories in display order.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.Query(ctx, categoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return categories, nil
}

// Products returns every in-stock product, newest first. With a non-empty
// category slug the list is narrowed to that category.
func (c *Client) Products(ctx context.Context, categorySlug string) ([]domain.ProductSummary, error) {
	var products []domain.ProductSummary
	query := productsQuery
	var params map[string]string
	if categorySlug != "" {
		query = categoryProductsQuery
		params = map[string]string{"category": categorySlug}
	}
	if err := c.Query(ctx, query, params, &products); err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}
	return products, nil
}

// NewProducts returns products created in the last 30 days. An empty window
// falls back to the newest six regardless of age.
func (c *Client) NewProducts(ctx context.Context) ([]domain.ProductSummary, error) {
	var products []domain.ProductSummary
	if err := c.Query(ctx, newProductsQuery, nil, &products); err != nil {
		return nil, fmt.Errorf("new products: %w", err)
	}
	if len(products) > 0 {
		return products, nil
	}
	if err := c.Query(ctx, newestFallbackQuery, nil, &products); err != nil {
		return nil, fmt.Errorf("newest products fallback: %w", err)
	}
	return products, nil
}

// ProductBySlug returns the full product document, or domain.ErrNotFound.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product *domain.Product
	if err := c.Query(ctx, productBySlugQuery, map[string]string{"slug": slug}, &product); err != nil {
		return nil, fmt.Errorf("product %q: %w", slug, err)
	}
	if product == nil || product.ID == "" {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// SiteSettings returns the singleton settings document, or
// domain.ErrNotFound when it was never created.
func (c *Client) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var settings *domain.SiteSettings
	if err := c.Query(ctx, siteSettingsQuery, nil, &settings); err != nil {
		return nil, fmt.Errorf("site settings: %w", err)
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return settings, nil
}

// InstagramPosts returns the four most recent curated posts.
func (c *Client) InstagramPosts(ctx context.Context) ([]domain.InstagramPost, error) {
	var posts []domain.InstagramPost
	if err := c.Query(ctx, instagramPostsQuery, nil, &posts); err != nil {
		return nil, fmt.Errorf("instagram posts: %w", err)
	}
	return posts, nil
}

// About returns the about section, or domain.ErrNotFound.
func (c *Client) About(ctx context.Context) (*domain.About, error) {
	var about *domain.About
	if err := c.Query(ctx, aboutQuery, nil, &about); err != nil {
		return nil, fmt.Errorf("about: %w", err)
	}
	if about == nil {
		return nil, domain.ErrNotFound
	}
	return about, nil
}

// SlugEntry is one row of the slug audit used by the repair tool.
type SlugEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductSlugs lists every product's id, name and slug.
func (c *Client) ProductSlugs(ctx context.Context) ([]SlugEntry, error) {
	var entries []SlugEntry
	if err := c.Query(ctx, slugAuditQuery, nil, &entries); err != nil {
		return nil, fmt.Errorf("product slugs: %w", err)
	}
	return entries, nil
}
