package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/luvium/lead-intake/internal/leads"
	"github.com/luvium/lead-intake/pkg/logging"
)

// Intake is the field set substituted into the notification templates. Both
// intake variants map their records onto it.
type Intake struct {
	Name               string
	Email              string
	Phone              string
	Company            string
	InvestmentInterest string
	Message            string
	Source             string
}

// LeadNotifier sends the two best-effort emails for an accepted lead: an
// operator notification and a submitter welcome. Failures are logged and
// never propagated to the submitter.
type LeadNotifier struct {
	sender        EmailSender
	operatorEmail string
	logger        *logging.Logger
}

// NewLeadNotifier creates a notifier. A nil sender degrades to the stub.
func NewLeadNotifier(sender EmailSender, operatorEmail string, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	if sender == nil {
		logger.Warn("email sender not configured, notifications will be logged only")
		sender = NewStubEmailSender(logger)
	}
	return &LeadNotifier{
		sender:        sender,
		operatorEmail: operatorEmail,
		logger:        logger,
	}
}

// LeadRegistered notifies about a lead accepted through the registration
// endpoint. Implements leads.Notifier.
func (n *LeadNotifier) LeadRegistered(ctx context.Context, lead *leads.Lead) {
	n.NotifyIntake(ctx, Intake{
		Name:               strings.TrimSpace(lead.FirstName + " " + lead.LastName),
		Email:              lead.Email,
		Phone:              lead.Phone,
		Company:            lead.Company,
		InvestmentInterest: lead.InvestmentRange,
		Message:            lead.Interests,
		Source:             "luviumcapital.com",
	})
}

// NotifyIntake sends both messages for one accepted intake.
func (n *LeadNotifier) NotifyIntake(ctx context.Context, intake Intake) {
	operator := EmailMessage{
		To:      n.operatorEmail,
		Subject: fmt.Sprintf("New Lead from %s - %s", intake.Source, orNA(intake.Name)),
		Body:    operatorBody(intake),
	}
	if err := n.sender.Send(ctx, operator); err != nil {
		n.logger.Error("failed to send operator notification", "error", err, "lead_email", intake.Email)
	}

	welcome := EmailMessage{
		To:      intake.Email,
		ToName:  intake.Name,
		Subject: "Welcome to Luvium - Your Investment Journey Starts Here",
		Body:    welcomeBody(intake),
	}
	if err := n.sender.Send(ctx, welcome); err != nil {
		n.logger.Error("failed to send welcome email", "error", err, "lead_email", intake.Email)
	}
}

func operatorBody(intake Intake) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New Lead Registration from %s\n", intake.Source)
	b.WriteString("========================================\n\n")
	fmt.Fprintf(&b, "Name: %s\n", orNA(intake.Name))
	fmt.Fprintf(&b, "Email: %s\n", orNA(intake.Email))
	fmt.Fprintf(&b, "Phone: %s\n", orNA(intake.Phone))
	fmt.Fprintf(&b, "Company: %s\n", orNA(intake.Company))
	fmt.Fprintf(&b, "Investment Interest: %s\n", orNA(intake.InvestmentInterest))
	fmt.Fprintf(&b, "Message: %s\n\n", orNA(intake.Message))
	fmt.Fprintf(&b, "Timestamp: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Source: %s Portal\n", intake.Source)
	return b.String()
}

func welcomeBody(intake Intake) string {
	name := intake.Name
	if name == "" {
		name = "Valued Client"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	b.WriteString("Thank you for your interest in Luvium!\n\n")
	b.WriteString("We have received your registration and one of our investment specialists will be in touch with you shortly to discuss your investment goals and opportunities.\n\n")
	b.WriteString("In the meantime, feel free to explore our investment products and resources on our website.\n\n")
	b.WriteString("If you have any immediate questions, please don't hesitate to reach out to us.\n\n")
	b.WriteString("Best regards,\nThe Luvium Team\n\n")
	b.WriteString("---\nLuvium - Building Wealth Together\nWeb: https://luvium.co.za\nEmail: info@luvium.co.za\n")
	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

var _ leads.Notifier = (*LeadNotifier)(nil)
