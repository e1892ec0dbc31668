package portal

import (
	"context"
	"strings"
	"time"

	"github.com/luvium/lead-intake/internal/notify"
	"github.com/luvium/lead-intake/pkg/logging"
)

// source identifies the portal variant in persisted records and emails.
const source = "luvium.co.za"

// Store persists portal leads.
type Store interface {
	Save(ctx context.Context, lead *Lead) (string, error)
}

// Processor validates a portal lead, persists it as a file and sends the
// operator and welcome emails best-effort.
type Processor struct {
	store    Store
	notifier *notify.LeadNotifier
	logger   *logging.Logger
}

// NewProcessor creates a portal lead processor. notifier may be nil.
func NewProcessor(store Store, notifier *notify.LeadNotifier, logger *logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Processor{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// validate applies the portal's light checks: name, email and phone present,
// email roughly shaped like an address.
func validate(lead *Lead) bool {
	if strings.TrimSpace(lead.Name) == "" ||
		strings.TrimSpace(lead.Email) == "" ||
		strings.TrimSpace(lead.Phone) == "" {
		return false
	}
	return strings.Contains(lead.Email, "@") && strings.Contains(lead.Email, ".")
}

// Process runs the portal flow. It returns (false, message) when the lead is
// invalid or could not be saved; notification failures never flip the result.
func (p *Processor) Process(ctx context.Context, lead *Lead) (bool, string) {
	p.logger.Info("processing portal lead", "email", lead.Email)

	if !validate(lead) {
		p.logger.Error("portal lead validation failed", "email", lead.Email)
		return false, "Invalid lead data"
	}

	lead.Timestamp = time.Now()
	lead.Source = source

	path, err := p.store.Save(ctx, lead)
	if err != nil {
		p.logger.Error("failed to save portal lead", "error", err)
		return false, "Failed to save lead"
	}
	p.logger.Info("portal lead saved", "path", path)

	if p.notifier != nil {
		p.notifier.NotifyIntake(ctx, notify.Intake{
			Name:               lead.Name,
			Email:              lead.Email,
			Phone:              lead.Phone,
			Company:            lead.Company,
			InvestmentInterest: lead.InvestmentInterest,
			Message:            lead.Message,
			Source:             source,
		})
	}

	p.logger.Info("portal lead processing completed", "email", lead.Email)
	return true, "Lead processed successfully"
}
