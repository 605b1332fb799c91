package services

import (
	"context"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const newsPath = "/news"

type NewsListOptions struct {
	ListOptions
	Category string
}

type NewsPage struct {
	Items []models.News `json:"data"`
	api.PageMeta
}

// NewsService maps admin news operations onto the backend's /news
// endpoints. Creates and updates always travel as multipart because the
// cover image rides along with the scalar fields; updates carry the
// _method=PUT override.
type NewsService struct {
	api      API
	validate *validation.Validator
}

func NewNewsService(api API, v *validation.Validator) *NewsService {
	return &NewsService{api: api, validate: v}
}

func (s *NewsService) List(ctx context.Context, opts NewsListOptions) (*NewsPage, error) {
	q := opts.query()
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}

	var page NewsPage
	if err := s.api.Get(ctx, newsPath, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *NewsService) Get(ctx context.Context, id int64) (*models.News, error) {
	var n models.News
	if err := s.api.Get(ctx, idPath(newsPath, id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NewsService) Create(ctx context.Context, in models.NewsInput, cover *Upload) (*models.News, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var n models.News
	if err := s.api.PostForm(ctx, newsPath, newsForm(in, cover), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NewsService) Update(ctx context.Context, id int64, in models.NewsInput, cover *Upload) (*models.News, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	form := newsForm(in, cover).OverrideMethod("PUT")

	var n models.News
	if err := s.api.PostForm(ctx, idPath(newsPath, id), form, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, idPath(newsPath, id))
}

// Publish sets or clears the published flag.
func (s *NewsService) Publish(ctx context.Context, id int64, published bool) error {
	body := map[string]bool{"published": published}
	return s.api.Post(ctx, idPath(newsPath, id)+"/publish", body, nil)
}

func newsForm(in models.NewsInput, cover *Upload) *api.Form {
	form := api.NewForm().
		Set("title", in.Title).
		Set("category", in.Category).
		Set("content", in.Content)
	if cover != nil {
		form.AddFile("image", cover.Name, cover.Data, cover.ContentType)
	}
	return form
}
