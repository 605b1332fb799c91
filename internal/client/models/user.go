// Package models defines the wire types exchanged with the content backend.
package models

import "time"

// Profile is the denormalized snapshot of the authenticated admin user,
// stored alongside the token for synchronous access. It may be stale
// relative to the backend's copy; it is refreshed only by an explicit
// current-user fetch.
type Profile struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LoginResult is the payload of a successful login: the bearer token plus
// the fresh profile snapshot.
type LoginResult struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// TokenResult is the payload of a token refresh.
type TokenResult struct {
	Token string `json:"token"`
}
