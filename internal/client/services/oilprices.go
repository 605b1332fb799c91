package services

import (
	"context"
	"net/url"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

const oilPricesPath = "/oil-prices"

type OilPriceListOptions struct {
	// From/To bound the date range, YYYY-MM-DD; either may be empty.
	From      string
	To        string
	Benchmark string
}

// OilPriceService maps the daily price-ticker data onto /oil-prices.
type OilPriceService struct {
	api      API
	validate *validation.Validator
}

func NewOilPriceService(api API, v *validation.Validator) *OilPriceService {
	return &OilPriceService{api: api, validate: v}
}

func (s *OilPriceService) List(ctx context.Context, opts OilPriceListOptions) ([]models.OilPrice, error) {
	q := url.Values{}
	if opts.From != "" {
		q.Set("from", opts.From)
	}
	if opts.To != "" {
		q.Set("to", opts.To)
	}
	if opts.Benchmark != "" {
		q.Set("benchmark", opts.Benchmark)
	}

	var prices []models.OilPrice
	if err := s.api.Get(ctx, oilPricesPath, q, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (s *OilPriceService) Create(ctx context.Context, in models.OilPriceInput) (*models.OilPrice, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	var p models.OilPrice
	if err := s.api.Post(ctx, oilPricesPath, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// BulkImport uploads a batch of price points in one call. Every row is
// validated locally first; one bad row fails the whole batch before any
// request is issued.
func (s *OilPriceService) BulkImport(ctx context.Context, rows []models.OilPriceInput) error {
	for _, row := range rows {
		if err := s.validate.Validate(row); err != nil {
			return err
		}
	}

	body := map[string]any{"prices": rows}
	return s.api.Post(ctx, oilPricesPath+"/bulk", body, nil)
}

func (s *OilPriceService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, idPath(oilPricesPath, id))
}
