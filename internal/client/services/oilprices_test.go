package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/validation"
)

func TestOilPriceService_List_DateRange(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025-01-01", q.Get("from"))
		assert.Equal(t, "2025-01-31", q.Get("to"))
		assert.Equal(t, "Brent", q.Get("benchmark"))
		writeOK(w, `[{"id":1,"date":"2025-01-02","benchmark":"Brent","price_usd":78.4}]`)
	})
	svc := NewOilPriceService(apiClient, newValidator())

	prices, err := svc.List(context.Background(), OilPriceListOptions{
		From: "2025-01-01", To: "2025-01-31", Benchmark: "Brent",
	})
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.InDelta(t, 78.4, prices[0].PriceUSD, 0.001)
}

func TestOilPriceService_BulkImport(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oil-prices/bulk", r.URL.Path)

		var body struct {
			Prices []models.OilPriceInput `json:"prices"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Prices, 2)

		writeOK(w, `{}`)
	})
	svc := NewOilPriceService(apiClient, newValidator())

	rows := []models.OilPriceInput{
		{Date: "2025-01-02", Benchmark: "Brent", PriceUSD: 78.4},
		{Date: "2025-01-03", Benchmark: "Brent", PriceUSD: 79.1},
	}
	assert.NoError(t, svc.BulkImport(context.Background(), rows))
}

func TestOilPriceService_BulkImport_OneBadRowFailsBatch(t *testing.T) {
	svc := NewOilPriceService(newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be issued")
	}), newValidator())

	rows := []models.OilPriceInput{
		{Date: "2025-01-02", Benchmark: "Brent", PriceUSD: 78.4},
		{Date: "not-a-date", Benchmark: "Brent", PriceUSD: 79.1},
	}

	err := svc.BulkImport(context.Background(), rows)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["date"], "must match the format")
}
