package services

import (
	"context"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const umkmPath = "/umkm"

type UMKMListOptions struct {
	ListOptions
	Category string
	Featured *bool
}

type UMKMPage struct {
	Items []models.UMKM `json:"data"`
	api.PageMeta
}

// UMKMService maps partner micro-business operations onto /umkm. The logo
// travels with the scalar fields, so creates and updates are multipart.
type UMKMService struct {
	api      API
	validate *validation.Validator
}

func NewUMKMService(api API, v *validation.Validator) *UMKMService {
	return &UMKMService{api: api, validate: v}
}

func (s *UMKMService) List(ctx context.Context, opts UMKMListOptions) (*UMKMPage, error) {
	q := opts.query()
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Featured != nil {
		if *opts.Featured {
			q.Set("featured", "1")
		} else {
			q.Set("featured", "0")
		}
	}

	var page UMKMPage
	if err := s.api.Get(ctx, umkmPath, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *UMKMService) Get(ctx context.Context, id int64) (*models.UMKM, error) {
	var u models.UMKM
	if err := s.api.Get(ctx, idPath(umkmPath, id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UMKMService) Create(ctx context.Context, in models.UMKMInput, logo *Upload) (*models.UMKM, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var u models.UMKM
	if err := s.api.PostForm(ctx, umkmPath, umkmForm(in, logo), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UMKMService) Update(ctx context.Context, id int64, in models.UMKMInput, logo *Upload) (*models.UMKM, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	form := umkmForm(in, logo).OverrideMethod("PUT")

	var u models.UMKM
	if err := s.api.PostForm(ctx, idPath(umkmPath, id), form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UMKMService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, idPath(umkmPath, id))
}

// Feature toggles whether the business appears in the public showcase
// highlight strip.
func (s *UMKMService) Feature(ctx context.Context, id int64, featured bool) error {
	body := map[string]bool{"featured": featured}
	return s.api.Post(ctx, idPath(umkmPath, id)+"/feature", body, nil)
}

func umkmForm(in models.UMKMInput, logo *Upload) *api.Form {
	form := api.NewForm().
		Set("name", in.Name).
		Set("owner", in.Owner).
		Set("category", in.Category).
		Set("description", in.Description).
		Set("phone", in.Phone).
		Set("address", in.Address)
	if logo != nil {
		form.AddFile("logo", logo.Name, logo.Data, logo.ContentType)
	}
	return form
}
