package portal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luvium/lead-intake/pkg/logging"
)

func TestProcessLead_Success(t *testing.T) {
	p := newTestProcessor(t, &recordingSender{})
	h := NewHandler(p, logging.New("error"))

	body := `{"name":"Jane Smith","email":"jane@example.com","phone":"+27115551234"}`
	req := httptest.NewRequest(http.MethodPost, "/portal/leads", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.ProcessLead(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
}

func TestProcessLead_InvalidBody(t *testing.T) {
	p := newTestProcessor(t, &recordingSender{})
	h := NewHandler(p, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/portal/leads", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	h.ProcessLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var resp response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "No data provided" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestProcessLead_InvalidLead(t *testing.T) {
	p := newTestProcessor(t, &recordingSender{})
	h := NewHandler(p, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/portal/leads", strings.NewReader(`{"name":"Only Name"}`))
	w := httptest.NewRecorder()

	h.ProcessLead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
