package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	itemID := uuid.MustParse("0190f5a9-0a3c-7d41-b2e5-6b1f1c9d2e10")
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
		wantErr    bool
	}{
		{
			name:   "item",
			data:   models.Item{ItemID: itemID, Name: "Camry", Description: "Sedan", AverageScore: 4.5, CreatedAt: createdAt},
			status: http.StatusCreated,
			wantBody: `{"id":"0190f5a9-0a3c-7d41-b2e5-6b1f1c9d2e10","name":"Camry","description":"Sedan",` +
				`"average_score":4.5,"created_at":"2026-01-02T03:04:05Z"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "details with no reviews",
			data:       models.ItemDetails{Item: models.Item{ItemID: itemID, CreatedAt: createdAt}, Reviews: []models.Review{}},
			status:     http.StatusOK,
			wantBody:   `{"item":{"id":"0190f5a9-0a3c-7d41-b2e5-6b1f1c9d2e10","name":"","description":"","average_score":0,"created_at":"2026-01-02T03:04:05Z"},"reviews":[],"average_score":0}`,
			wantStatus: http.StatusOK,
		},
		{name: "empty list stays an array", data: []models.Item{}, status: http.StatusOK, wantBody: `[]`, wantStatus: http.StatusOK},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`, wantStatus: http.StatusOK},
		{name: "error status", data: map[string]string{"error": "not found"}, status: http.StatusNotFound, wantBody: `{"error":"not found"}`, wantStatus: http.StatusNotFound},
		{name: "unmarshalable", data: make(chan int), status: http.StatusOK, wantStatus: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, rec.Body.Len(), n)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "valid", payload: `{"name":"Camry","description":"Sedan"}`, want: "Camry"},
		{name: "whitespace around body", payload: " \n{\"name\":\"Civic\"}\n ", want: "Civic"},
		{name: "unknown field", payload: `{"name":"car","extra":1}`, wantErr: true},
		{name: "malformed", payload: `{"name":`, wantErr: true},
		{name: "trailing data", payload: `{"name":"car"}{"name":"bike"}`, wantErr: true},
		{name: "empty", payload: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var got body
			err := DecodeJSON(r, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}
