// Package services contains one thin service per backend resource. Each
// operation maps to exactly one HTTP call through the shared API client:
// no caching, no client-side joins, no cross-resource orchestration.
// Errors are never swallowed here; the view layer decides presentation.
package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/api"
)

// API is the transport surface services call through. *api.Client satisfies
// it; tests may substitute fakes.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string) error
	PostForm(ctx context.Context, path string, form *api.Form, out any) error
}

// ListOptions are the pagination/search parameters every list endpoint
// accepts. Zero values are omitted from the query string.
type ListOptions struct {
	Page    int
	PerPage int
	Search  string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// Upload is a file payload attached to a multipart create/update.
type Upload struct {
	Name        string
	Data        []byte
	ContentType string
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
