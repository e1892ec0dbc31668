package leads

import (
	"context"
	"errors"
	"time"

	"github.com/luvium/lead-intake/internal/observability/metrics"
	"github.com/luvium/lead-intake/pkg/logging"
)

// duplicateMessage is the reason reported on the email field for duplicates,
// whether caught by the advisory check or by the storage constraint.
const duplicateMessage = "This email address is already registered"

// Status is the terminal state of one submission.
type Status int

const (
	// StatusPersisted means the lead was validated and stored.
	StatusPersisted Status = iota
	// StatusRejected means one or more required fields failed validation.
	StatusRejected
	// StatusDuplicateRejected means the email is already registered.
	StatusDuplicateRejected
	// StatusStoreFailed means the store refused the lead for a reason other
	// than a duplicate.
	StatusStoreFailed
)

// Result carries the outcome of one submission.
type Result struct {
	Status Status
	LeadID string
	Lead   *Lead
	// Errors maps field names to human-readable reasons. Populated for
	// StatusRejected and StatusDuplicateRejected.
	Errors map[string]string
}

// Notifier delivers best-effort notifications for accepted leads.
type Notifier interface {
	LeadRegistered(ctx context.Context, lead *Lead)
}

// Service orchestrates validation, duplicate checking, persistence and
// notification for lead submissions.
type Service struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.IntakeMetrics
	logger   *logging.Logger
}

// NewService creates the intake orchestrator. notifier and intake metrics
// may be nil.
func NewService(repo Repository, notifier Notifier, m *metrics.IntakeMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Submit processes one raw submission end to end. The returned error is
// reserved for unexpected storage failures during the duplicate check or
// insert; every validation outcome is expressed through Result.
func (s *Service) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	lead, fieldErrs := Validate(sub)
	if fieldErrs != nil {
		for field := range fieldErrs {
			s.metrics.ObserveFieldError(field)
		}
		s.metrics.ObserveSubmission(metrics.OutcomeRejected)
		s.logger.Info("lead rejected", "errors", len(fieldErrs))
		return &Result{Status: StatusRejected, Errors: fieldErrs}, nil
	}

	// Advisory check. The store's uniqueness constraint remains the final
	// authority for races past this point.
	exists, err := s.repo.EmailExists(ctx, lead.Email)
	if err != nil {
		s.logger.Error("duplicate check failed", "error", err)
		s.metrics.ObserveSubmission(metrics.OutcomeError)
		return nil, err
	}
	if exists {
		s.metrics.ObserveSubmission(metrics.OutcomeDuplicate)
		s.logger.Info("duplicate lead rejected", "email", lead.Email)
		return &Result{
			Status: StatusDuplicateRejected,
			Errors: map[string]string{"email": duplicateMessage},
		}, nil
	}

	start := time.Now()
	id, err := s.repo.Create(ctx, lead)
	s.metrics.ObservePersistLatency(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			s.metrics.ObserveSubmission(metrics.OutcomeDuplicate)
			s.logger.Info("duplicate lead rejected at insert", "email", lead.Email)
			return &Result{
				Status: StatusDuplicateRejected,
				Errors: map[string]string{"email": duplicateMessage},
			}, nil
		}
		s.metrics.ObserveSubmission(metrics.OutcomeError)
		s.logger.Error("failed to save lead", "error", err)
		return &Result{Status: StatusStoreFailed}, nil
	}

	s.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	s.logger.Info("new lead registered", "id", id, "email", lead.Email)

	if s.notifier != nil {
		// Best effort; the notifier logs its own failures.
		s.notifier.LeadRegistered(ctx, lead)
	}

	return &Result{Status: StatusPersisted, LeadID: id, Lead: lead}, nil
}
