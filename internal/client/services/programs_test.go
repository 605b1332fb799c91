package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsl-project/tjslctl/internal/client/models"
)

func validProgram() models.ProgramInput {
	return models.ProgramInput{
		Name:        "Mangrove restoration",
		Pillar:      "lingkungan",
		Description: "Coastal replanting around the terminal",
		Year:        2025,
		Status:      "running",
	}
}

func TestProgramService_List_Filters(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "lingkungan", q.Get("pillar"))
		assert.Equal(t, "2025", q.Get("year"))
		assert.Equal(t, "running", q.Get("status"))
		writeOK(w, `{"data":[{"id":4,"name":"Mangrove restoration"}],"current_page":1,"last_page":1,"per_page":10,"total":1}`)
	})
	svc := NewProgramService(apiClient, newValidator())

	page, err := svc.List(context.Background(), ProgramListOptions{Pillar: "lingkungan", Year: 2025, Status: "running"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mangrove restoration", page.Items[0].Name)
}

func TestProgramService_Create_SendsJSONBody(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/programs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.ProgramInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Mangrove restoration", in.Name)

		writeOK(w, `{"id":4,"name":"Mangrove restoration","pillar":"lingkungan"}`)
	})
	svc := NewProgramService(apiClient, newValidator())

	p, err := svc.Create(context.Background(), validProgram())
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
}

func TestProgramService_Update_UsesPut(t *testing.T) {
	apiClient := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/programs/4", r.URL.Path)
		writeOK(w, `{"id":4,"name":"Mangrove restoration"}`)
	})
	svc := NewProgramService(apiClient, newValidator())

	_, err := svc.Update(context.Background(), 4, validProgram())
	require.NoError(t, err)
}

func TestProgramService_Create_RejectsUnknownPillar(t *testing.T) {
	svc := NewProgramService(newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be issued")
	}), newValidator())

	in := validProgram()
	in.Pillar = "unknown"

	_, err := svc.Create(context.Background(), in)
	assert.Error(t, err)
}
