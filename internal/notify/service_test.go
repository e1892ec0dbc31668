package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvium/lead-intake/internal/leads"
	"github.com/luvium/lead-intake/pkg/logging"
)

// recordingSender captures sent messages and can be told to fail.
type recordingSender struct {
	sent []EmailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func TestLeadNotifier_NotifyIntake_SendsBothMessages(t *testing.T) {
	sender := &recordingSender{}
	n := NewLeadNotifier(sender, "admin@luvium.co.za", logging.New("error"))

	n.NotifyIntake(context.Background(), Intake{
		Name:               "Jane Smith",
		Email:              "jane@example.com",
		Phone:              "+27115551234",
		InvestmentInterest: "100k_500k",
		Source:             "luvium.co.za",
	})

	require.Len(t, sender.sent, 2)

	operator := sender.sent[0]
	assert.Equal(t, "admin@luvium.co.za", operator.To)
	assert.Equal(t, "New Lead from luvium.co.za - Jane Smith", operator.Subject)
	assert.Contains(t, operator.Body, "Name: Jane Smith")
	assert.Contains(t, operator.Body, "Email: jane@example.com")
	assert.Contains(t, operator.Body, "Investment Interest: 100k_500k")
	// Missing optional fields render as N/A.
	assert.Contains(t, operator.Body, "Company: N/A")

	welcome := sender.sent[1]
	assert.Equal(t, "jane@example.com", welcome.To)
	assert.Contains(t, welcome.Subject, "Welcome to Luvium")
	assert.True(t, strings.HasPrefix(welcome.Body, "Dear Jane Smith,"))
}

func TestLeadNotifier_WelcomeFallbackName(t *testing.T) {
	sender := &recordingSender{}
	n := NewLeadNotifier(sender, "admin@luvium.co.za", logging.New("error"))

	n.NotifyIntake(context.Background(), Intake{Email: "anon@example.com", Source: "luvium.co.za"})

	require.Len(t, sender.sent, 2)
	assert.True(t, strings.HasPrefix(sender.sent[1].Body, "Dear Valued Client,"))
}

func TestLeadNotifier_SendFailuresAreSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	n := NewLeadNotifier(sender, "admin@luvium.co.za", logging.New("error"))

	// Must not panic or propagate; both sends are still attempted.
	n.NotifyIntake(context.Background(), Intake{Name: "X Y", Email: "x@example.com", Source: "luvium.co.za"})
	assert.Len(t, sender.sent, 2)
}

func TestNewLeadNotifier_NilSenderDegradesToStub(t *testing.T) {
	n := NewLeadNotifier(nil, "admin@luvium.co.za", logging.New("error"))
	require.NotNil(t, n)
	// Stub sender never errors, so this is a no-op.
	n.NotifyIntake(context.Background(), Intake{Name: "A B", Email: "a@example.com", Source: "luvium.co.za"})
}

func TestLeadNotifier_LeadRegistered_MapsFields(t *testing.T) {
	sender := &recordingSender{}
	n := NewLeadNotifier(sender, "admin@luvium.co.za", logging.New("error"))

	n.LeadRegistered(context.Background(), &leads.Lead{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john@example.com",
		Phone:           "+15551234567",
		Company:         "Acme",
		InvestmentRange: "over_1m",
		Interests:       "Growth funds",
	})

	require.Len(t, sender.sent, 2)
	operator := sender.sent[0]
	assert.Contains(t, operator.Subject, "John Doe")
	assert.Contains(t, operator.Body, "Company: Acme")
	assert.Contains(t, operator.Body, "Investment Interest: over_1m")
	assert.Contains(t, operator.Body, "Message: Growth funds")
	assert.Equal(t, "john@example.com", sender.sent[1].To)
}
