package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv, NewClient(Config{BaseURL: srv.URL})
}

func TestClientVerify(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/verify" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Alert.Content != "flood warning" {
			t.Errorf("request content = %q, want %q", req.Alert.Content, "flood warning")
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id":         "verification_1",
				"alertId":    "alert_1",
				"isVerified": true,
				"trustScore": map[string]interface{}{"overall": 0.82},
			},
		})
	})

	result, err := c.Verifications().Verify(context.Background(), Alert{
		ID:      "alert_1",
		Content: "flood warning",
		Source:  Source{ID: "imd", Name: "IMD"},
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if result.AlertID != "alert_1" || !result.IsVerified {
		t.Errorf("Verify() = %+v, want alert_1 verified", result)
	}
	if result.TrustScore.Overall != 0.82 {
		t.Errorf("Verify() overall = %v, want 0.82", result.TrustScore.Overall)
	}
}

func TestClientAPIError(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    "NOT_FOUND",
				"message": "Alert not found",
			},
		})
	})

	_, err := c.Alerts().Get(context.Background(), "alert_missing")
	if err == nil {
		t.Fatal("Get() expected error, got nil")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Get() error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Code != "NOT_FOUND" {
		t.Errorf("Get() error = %+v, want 404 NOT_FOUND", apiErr)
	}
	if !apiErr.IsNotFound() {
		t.Error("IsNotFound() = false, want true")
	}
	if apiErr.IsServerError() {
		t.Error("IsServerError() = true, want false")
	}
}

func TestClientNonEnvelopeError(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := c.Alerts().Get(context.Background(), "alert_1")
	if err == nil {
		t.Fatal("Get() expected error, got nil")
	}
	if _, ok := err.(*APIError); ok {
		t.Error("Get() returned *APIError for a non-envelope body")
	}
}

func TestClientListAlerts(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page_size"); got != "5" {
			t.Errorf("page_size = %q, want 5", got)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"data":        []map[string]interface{}{{"id": "alert_1"}, {"id": "alert_2"}},
				"page":        1,
				"page_size":   5,
				"total":       2,
				"total_pages": 1,
			},
		})
	})

	page, err := c.Alerts().List(context.Background(), &AlertListOptions{
		ListOptions: ListOptions{Page: 1, PageSize: 5},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if page.Total != 2 || len(page.Data) != 2 {
		t.Errorf("List() = %+v, want 2 alerts", page)
	}
	if page.Data[0].ID != "alert_1" {
		t.Errorf("List() first alert = %v, want alert_1", page.Data[0].ID)
	}
}
