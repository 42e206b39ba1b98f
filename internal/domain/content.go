package domain

import "time"

// HeroSlide is one slide of the landing carousel, ordered by Order.
type HeroSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"backgroundImage,omitempty"`
	CTAText  string `json:"ctaText,omitempty"`
	CTALink  string `json:"ctaLink,omitempty"`
	Order    int    `json:"order"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"backgroundImage,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	Order       int    `json:"order"`
}

type InstagramPost struct {
	ID          string    `json:"id"`
	ImageURL    string    `json:"image,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	Link        string    `json:"link,omitempty"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

type About struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	ImageURL    string         `json:"image,omitempty"`
	Features    []AboutFeature `json:"features,omitempty"`
}

type AboutFeature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
