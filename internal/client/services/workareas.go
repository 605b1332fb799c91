package services

import (
	"context"
	"net/url"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const workAreasPath = "/work-areas"

// WorkAreaService maps the interactive-map geography onto /work-areas.
// Geometry is passed through opaquely; the client never interprets it.
type WorkAreaService struct {
	api      API
	validate *validation.Validator
}

func NewWorkAreaService(api API, v *validation.Validator) *WorkAreaService {
	return &WorkAreaService{api: api, validate: v}
}

// List returns every work area; the set is small enough that the backend
// does not paginate it.
func (s *WorkAreaService) List(ctx context.Context, areaType string) ([]models.WorkArea, error) {
	var q url.Values
	if areaType != "" {
		q = url.Values{"type": []string{areaType}}
	}

	var areas []models.WorkArea
	if err := s.api.Get(ctx, workAreasPath, q, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *WorkAreaService) Get(ctx context.Context, id int64) (*models.WorkArea, error) {
	var a models.WorkArea
	if err := s.api.Get(ctx, idPath(workAreasPath, id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *WorkAreaService) Create(ctx context.Context, in models.WorkAreaInput) (*models.WorkArea, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var a models.WorkArea
	if err := s.api.Post(ctx, workAreasPath, in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *WorkAreaService) Update(ctx context.Context, id int64, in models.WorkAreaInput) (*models.WorkArea, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var a models.WorkArea
	if err := s.api.Put(ctx, idPath(workAreasPath, id), in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *WorkAreaService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, idPath(workAreasPath, id))
}
