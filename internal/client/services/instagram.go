package services

import (
	"context"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/models"
)

const instagramPath = "/instagram"

type InstagramPage struct {
	Items []models.InstagramPost `json:"data"`
	api.PageMeta
}

// InstagramService curates which feed posts appear on the public site.
// The posts themselves come from the backend's feed sync; the admin only
// features or hides them.
type InstagramService struct {
	api API
}

func NewInstagramService(api API) *InstagramService {
	return &InstagramService{api: api}
}

func (s *InstagramService) List(ctx context.Context, opts ListOptions) (*InstagramPage, error) {
	var page InstagramPage
	if err := s.api.Get(ctx, instagramPath, opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Sync asks the backend to pull the latest posts from the connected feed.
func (s *InstagramService) Sync(ctx context.Context) error {
	return s.api.Post(ctx, instagramPath+"/sync", nil, nil)
}

func (s *InstagramService) Feature(ctx context.Context, id int64, featured bool) error {
	body := map[string]bool{"featured": featured}
	return s.api.Post(ctx, idPath(instagramPath, id)+"/feature", body, nil)
}

func (s *InstagramService) Hide(ctx context.Context, id int64, hidden bool) error {
	body := map[string]bool{"hidden": hidden}
	return s.api.Post(ctx, idPath(instagramPath, id)+"/hide", body, nil)
}
