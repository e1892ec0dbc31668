package leads

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/luvium/lead-intake/pkg/logging"
)

// User-facing messages. Kept identical across storage backends.
const (
	msgSuccess    = "Thank you for your interest! We have received your registration and will contact you soon with exclusive investment opportunities."
	msgFixErrors  = "Please correct the errors below"
	msgStoreError = "An error occurred while saving your information"
	msgUnexpected = "An unexpected error occurred. Please try again later."
	msgListError  = "Error fetching leads"
)

// Handler handles HTTP requests for lead registration.
type Handler struct {
	service *Service
	repo    Repository
	logger  *logging.Logger
}

// NewHandler creates a new leads handler.
func NewHandler(service *Service, repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		repo:    repo,
		logger:  logger,
	}
}

type submitResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	LeadID  string            `json:"lead_id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type listResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Leads   []*Lead `json:"leads"`
	Total   int     `json:"total"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// SubmitLead handles POST /leads. The body may be form-encoded or JSON.
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		h.logger.Error("failed to decode submission", "error", err)
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.service.Submit(r.Context(), sub)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, submitResponse{
			Success: false,
			Message: msgUnexpected,
		})
		return
	}

	switch result.Status {
	case StatusPersisted:
		writeJSON(w, http.StatusOK, submitResponse{
			Success: true,
			Message: msgSuccess,
			LeadID:  result.LeadID,
		})
	case StatusRejected, StatusDuplicateRejected:
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Message: msgFixErrors,
			Errors:  result.Errors,
		})
	default:
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Message: msgStoreError,
		})
	}
}

// ListLeads handles GET /leads, for admin use. Newest first.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		writeJSON(w, http.StatusInternalServerError, listResponse{
			Success: false,
			Message: msgListError,
		})
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Leads:   all,
		Total:   len(all),
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.repo.Ping(r.Context()); err != nil {
		h.logger.Warn("health check: database unreachable", "error", err)
		database = "not_found"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  database,
	})
}

func decodeSubmission(r *http.Request) (*Submission, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return nil, err
		}
		return &sub, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &Submission{
		FirstName:       r.PostFormValue("first_name"),
		LastName:        r.PostFormValue("last_name"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		Company:         r.PostFormValue("company"),
		JobTitle:        r.PostFormValue("job_title"),
		Country:         r.PostFormValue("country"),
		InvestmentRange: r.PostFormValue("investment_range"),
		Interests:       r.PostFormValue("interests"),
		HowHeard:        r.PostFormValue("how_heard"),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
