package services

import (
	"context"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const awardsPath = "/awards"

type AwardPage struct {
	Items []models.Award `json:"data"`
	api.PageMeta
}

// AwardService maps award operations onto /awards.
type AwardService struct {
	api      API
	validate *validation.Validator
}

func NewAwardService(api API, v *validation.Validator) *AwardService {
	return &AwardService{api: api, validate: v}
}

func (s *AwardService) List(ctx context.Context, opts ListOptions) (*AwardPage, error) {
	var page AwardPage
	if err := s.api.Get(ctx, awardsPath, opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *AwardService) Create(ctx context.Context, in models.AwardInput, image *Upload) (*models.Award, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	form := api.NewForm().
		Set("title", in.Title).
		Set("issuer", in.Issuer).
		Set("year", strconv.Itoa(in.Year))
	if image != nil {
		form.AddFile("image", image.Name, image.Data, image.ContentType)
	}

	var a models.Award
	if err := s.api.PostForm(ctx, awardsPath, form, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AwardService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, idPath(awardsPath, id))
}
