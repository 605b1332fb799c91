package services

import (
	"context"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const programsPath = "/programs"

type ProgramListOptions struct {
	ListOptions
	Pillar string
	Year   int
	Status string
}

type ProgramPage struct {
	Items []models.Program `json:"data"`
	api.PageMeta
}

// ProgramService maps TJSL program operations onto /programs.
type ProgramService struct {
	api      API
	validate *validation.Validator
}

func NewProgramService(api API, v *validation.Validator) *ProgramService {
	return &ProgramService{api: api, validate: v}
}

func (s *ProgramService) List(ctx context.Context, opts ProgramListOptions) (*ProgramPage, error) {
	q := opts.query()
	if opts.Pillar != "" {
		q.Set("pillar", opts.Pillar)
	}
	if opts.Year > 0 {
		q.Set("year", strconv.Itoa(opts.Year))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}

	var page ProgramPage
	if err := s.api.Get(ctx, programsPath, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *ProgramService) Get(ctx context.Context, id int64) (*models.Program, error) {
	var p models.Program
	if err := s.api.Get(ctx, idPath(programsPath, id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProgramService) Create(ctx context.Context, in models.ProgramInput) (*models.Program, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var p models.Program
	if err := s.api.Post(ctx, programsPath, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProgramService) Update(ctx context.Context, id int64, in models.ProgramInput) (*models.Program, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var p models.Program
	if err := s.api.Put(ctx, idPath(programsPath, id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProgramService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, idPath(programsPath, id))
}
