package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

func TestNewsService_List_QueryParameters(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("per_page"))
		assert.Equal(t, "mangrove", q.Get("search"))
		assert.Equal(t, "tjsl", q.Get("category"))
		writeOK(w, `{"data":[{"id":1,"title":"Mangrove planting"}],"current_page":2,"last_page":4,"per_page":20,"total":64}`)
	})
	svc := NewNewsService(apiClient, newValidator())

	page, err := svc.List(context.Background(), NewsListOptions{
		ListOptions: ListOptions{Page: 2, PerPage: 20, Search: "mangrove"},
		Category:    "tjsl",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mangrove planting", page.Items[0].Title)
	assert.Equal(t, 64, page.Total)
}

func TestNewsService_Create_MultipartWithCover(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/news", r.URL.Path)
		assert.Equal(t, "Harvest festival", r.FormValue("title"))
		assert.Empty(t, r.FormValue("_method"))

		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "cover.jpg", header.Filename)

		writeOK(w, `{"id":10,"title":"Harvest festival"}`)
	})
	svc := NewNewsService(apiClient, newValidator())

	in := models.NewsInput{Title: "Harvest festival", Category: "tjsl", Content: "body"}
	cover := &Upload{Name: "cover.jpg", Data: []byte("jpg"), ContentType: "image/jpeg"}

	n, err := svc.Create(context.Background(), in, cover)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n.ID)
}

func TestNewsService_Update_UsesMethodOverride(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/news/10", r.URL.Path)
		assert.Equal(t, "PUT", r.FormValue("_method"))
		writeOK(w, `{"id":10,"title":"Updated"}`)
	})
	svc := NewNewsService(apiClient, newValidator())

	in := models.NewsInput{Title: "Updated", Category: "tjsl", Content: "body"}
	n, err := svc.Update(context.Background(), 10, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "Updated", n.Title)
}

func TestNewsService_Create_ValidationShortCircuits(t *testing.T) {
	var hits atomic.Int32
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	svc := NewNewsService(apiClient, newValidator())

	_, err := svc.Create(context.Background(), models.NewsInput{}, nil)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["title"])
	assert.Zero(t, hits.Load(), "invalid payload must not reach the backend")
}

func TestNewsService_Delete(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/news/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	svc := NewNewsService(apiClient, newValidator())

	assert.NoError(t, svc.Delete(context.Background(), 3))
}
