package portal

import (
	"encoding/json"
	"net/http"

	"github.com/luvium/lead-intake/pkg/logging"
)

// Handler handles HTTP requests for the portal intake variant.
type Handler struct {
	processor *Processor
	logger    *logging.Logger
}

// NewHandler creates a new portal handler.
func NewHandler(processor *Processor, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProcessLead handles POST /portal/leads with a JSON lead payload.
func (h *Handler) ProcessLead(w http.ResponseWriter, r *http.Request) {
	var lead Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.logger.Error("failed to decode portal lead", "error", err)
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "No data provided"})
		return
	}

	ok, message := h.processor.Process(r.Context(), &lead)
	status := http.StatusOK
	if !ok {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, response{Success: ok, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
