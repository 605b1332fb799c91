package api

import "encoding/json"

// envelope is the response body shape shared by every endpoint:
// a success flag, an optional human-readable message, the resource-specific
// payload, and (for validation failures) field-level error messages.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// PageMeta carries the pagination fields list endpoints return alongside
// their items. Embed it in a typed page struct:
//
//	type NewsPage struct {
//	    Items []News `json:"data"`
//	    api.PageMeta
//	}
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}
