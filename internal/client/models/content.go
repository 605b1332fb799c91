package models

import "time"

// News is a public news/article item managed by the admin panel.
type News struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Category    string     `json:"category"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"image_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewsInput carries the scalar fields of a create/update; the cover image
// travels separately as a multipart file part.
type NewsInput struct {
	Title    string `json:"title" validate:"required,max=255"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// Program is one TJSL/CSR program entry.
type Program struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Pillar      string `json:"pillar"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Year        int    `json:"year"`
	Budget      int64  `json:"budget,omitempty"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url,omitempty"`
}

type ProgramInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Pillar      string `json:"pillar" validate:"required,oneof=lingkungan sosial ekonomi hukum"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
	Year        int    `json:"year" validate:"required,gte=2000"`
	Budget      int64  `json:"budget" validate:"gte=0"`
	Status      string `json:"status" validate:"required,oneof=planned running finished"`
}

// UMKM is a partner micro-business shown on the public showcase.
type UMKM struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Featured    bool   `json:"featured"`
}

type UMKMInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Owner       string `json:"owner" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// Award is a recognition item shown on the public site.
type Award struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Issuer   string `json:"issuer"`
	Year     int    `json:"year"`
	ImageURL string `json:"image_url,omitempty"`
}

type AwardInput struct {
	Title  string `json:"title" validate:"required,max=255"`
	Issuer string `json:"issuer" validate:"required"`
	Year   int    `json:"year" validate:"required,gte=1990"`
}
