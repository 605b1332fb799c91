package models

import (
	"encoding/json"
	"time"
)

// OilPrice is one daily benchmark price point shown on the public ticker.
type OilPrice struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Benchmark string  `json:"benchmark"`
	PriceUSD  float64 `json:"price_usd"`
}

type OilPriceInput struct {
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Benchmark string  `json:"benchmark" validate:"required"`
	PriceUSD  float64 `json:"price_usd" validate:"required,gt=0"`
}

// InstagramPost is a curated feed item; Featured posts appear on the public
// site, Hidden ones are kept out regardless of feed order.
type InstagramPost struct {
	ID           int64      `json:"id"`
	PostURL      string     `json:"post_url"`
	Caption      string     `json:"caption"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Featured     bool       `json:"featured"`
	Hidden       bool       `json:"hidden"`
	PostedAt     *time.Time `json:"posted_at,omitempty"`
}

// WorkArea is one operational area rendered on the interactive map.
// Polygon is passed through opaquely as GeoJSON; the client never
// interprets the geometry.
type WorkArea struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Polygon     json.RawMessage `json:"polygon,omitempty"`
}

type WorkAreaInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Type        string          `json:"type" validate:"required,oneof=field terminal office"`
	Description string          `json:"description"`
	Latitude    float64         `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   float64         `json:"longitude" validate:"required,gte=-180,lte=180"`
	Polygon     json.RawMessage `json:"polygon,omitempty"`
}

// SiteSettings is the singleton public-site configuration record.
type SiteSettings struct {
	SiteName     string `json:"site_name"`
	Tagline      string `json:"tagline,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	YoutubeURL   string `json:"youtube_url,omitempty"`
}

type SiteSettingsInput struct {
	SiteName     string `json:"site_name" validate:"required,max=255"`
	Tagline      string `json:"tagline"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	FacebookURL  string `json:"facebook_url" validate:"omitempty,url"`
	YoutubeURL   string `json:"youtube_url" validate:"omitempty,url"`
}

// DashboardStats is the admin landing-page counters payload.
type DashboardStats struct {
	NewsCount     int `json:"news_count"`
	ProgramCount  int `json:"program_count"`
	UMKMCount     int `json:"umkm_count"`
	AwardCount    int `json:"award_count"`
	WorkAreaCount int `json:"work_area_count"`
}
