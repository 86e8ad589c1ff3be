package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goldcrust/storefront/internal/models"
)

func TestSubmitReview(t *testing.T) {
	bakery := defaultBakery()
	srv := bakery.server()
	defer srv.Close()

	sf := newStorefront(srv.URL, bakery, false)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid review",
			requestBody: models.ReviewRequest{
				CustomerName: "Lisa Thompson",
				Rating:       5,
				Comment:      "The apple pie was phenomenal!",
				ProductID:    "prod_001",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			requestBody: models.ReviewRequest{
				Rating:  5,
				Comment: "Great!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing comment",
			requestBody: models.ReviewRequest{
				CustomerName: "Lisa",
				Rating:       4,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "rating out of range",
			requestBody: models.ReviewRequest{
				CustomerName: "Lisa",
				Rating:       7,
				Comment:      "Great!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
			w := httptest.NewRecorder()
			sf.router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				var review models.Review
				if err := json.NewDecoder(w.Body).Decode(&review); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if review.Approved {
					t.Error("new reviews must start unapproved")
				}
			}
		})
	}
}

func TestListReviews_FallbackWhenBackendDown(t *testing.T) {
	bakery := defaultBakery()
	srv := bakery.server()
	srv.Close()

	sf := newStorefront(srv.URL, bakery, true)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	w := httptest.NewRecorder()
	sf.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("X-Fallback-Data") != "true" {
		t.Error("fallback responses must be marked with X-Fallback-Data")
	}

	var reviews []models.Review
	if err := json.NewDecoder(w.Body).Decode(&reviews); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, r := range reviews {
		if !r.Approved {
			t.Errorf("unapproved review %s on the public surface", r.ID)
		}
	}
}
