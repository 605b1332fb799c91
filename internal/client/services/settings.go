package services

import (
	"context"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const settingsPath = "/settings"

// SettingsService manages the singleton public-site configuration record
// and the dashboard counters.
type SettingsService struct {
	api      API
	validate *validation.Validator
}

func NewSettingsService(api API, v *validation.Validator) *SettingsService {
	return &SettingsService{api: api, validate: v}
}

func (s *SettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	var out models.SiteSettings
	if err := s.api.Get(ctx, settingsPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SettingsService) Update(ctx context.Context, in models.SiteSettingsInput) (*models.SiteSettings, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var out models.SiteSettings
	if err := s.api.Put(ctx, settingsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadLogo replaces the site logo. The file rides in a multipart POST
// with the _method=PUT override, like every update that carries a file.
func (s *SettingsService) UploadLogo(ctx context.Context, logo Upload) (*models.SiteSettings, error) {
	form := api.NewForm().
		AddFile("logo", logo.Name, logo.Data, logo.ContentType).
		OverrideMethod("PUT")

	var out models.SiteSettings
	if err := s.api.PostForm(ctx, settingsPath+"/logo", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the admin dashboard counters.
func (s *SettingsService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.api.Get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
