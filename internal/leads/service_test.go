package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/luvium/lead-intake/pkg/logging"
)

// recordingNotifier captures notified leads.
type recordingNotifier struct {
	leads []*Lead
}

func (n *recordingNotifier) LeadRegistered(_ context.Context, lead *Lead) {
	n.leads = append(n.leads, lead)
}

// failingRepository lets tests force specific storage failures.
type failingRepository struct {
	existsErr error
	createErr error
}

func (f *failingRepository) Create(context.Context, *Lead) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return "id-1", nil
}

func (f *failingRepository) EmailExists(context.Context, string) (bool, error) {
	return false, f.existsErr
}

func (f *failingRepository) List(context.Context) ([]*Lead, error) { return nil, nil }
func (f *failingRepository) Ping(context.Context) error            { return nil }

func TestService_Submit_Persisted(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nil, logging.New("error"))

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusPersisted {
		t.Fatalf("expected StatusPersisted, got %v", result.Status)
	}
	if result.LeadID == "" {
		t.Error("expected generated lead id")
	}
	if len(notifier.leads) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.leads))
	}
	if notifier.leads[0].Email != "john.doe@example.com" {
		t.Errorf("notifier received unnormalized email: %s", notifier.leads[0].Email)
	}
}

func TestService_Submit_Rejected(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nil, logging.New("error"))

	sub := validSubmission()
	sub.Country = ""
	sub.Phone = "123"

	result, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusRejected {
		t.Fatalf("expected StatusRejected, got %v", result.Status)
	}
	if _, ok := result.Errors["country"]; !ok {
		t.Error("expected country error")
	}
	if _, ok := result.Errors["phone"]; !ok {
		t.Error("expected phone error")
	}

	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Errorf("rejected submission must not persist, found %d leads", len(all))
	}
	if len(notifier.leads) != 0 {
		t.Error("rejected submission must not notify")
	}
}

func TestService_Submit_DuplicateAdvisory(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, nil, nil, logging.New("error"))
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmission())
	if err != nil || first.Status != StatusPersisted {
		t.Fatalf("first submission should persist: %v %v", first, err)
	}

	second, err := svc.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Status != StatusDuplicateRejected {
		t.Fatalf("expected StatusDuplicateRejected, got %v", second.Status)
	}
	if second.Errors["email"] != duplicateMessage {
		t.Errorf("unexpected duplicate message: %q", second.Errors["email"])
	}

	all, _ := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected exactly one stored lead, got %d", len(all))
	}
}

func TestService_Submit_DuplicateAtInsert(t *testing.T) {
	// The advisory check passes but the store raises the constraint, as in a
	// race between two concurrent submissions.
	repo := &failingRepository{createErr: ErrDuplicateEmail}
	svc := NewService(repo, nil, nil, logging.New("error"))

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusDuplicateRejected {
		t.Fatalf("expected StatusDuplicateRejected, got %v", result.Status)
	}
	if result.Errors["email"] != duplicateMessage {
		t.Errorf("unexpected duplicate message: %q", result.Errors["email"])
	}
}

func TestService_Submit_StoreFailure(t *testing.T) {
	repo := &failingRepository{createErr: errors.New("disk full")}
	svc := NewService(repo, nil, nil, logging.New("error"))

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusStoreFailed {
		t.Fatalf("expected StatusStoreFailed, got %v", result.Status)
	}
}

func TestService_Submit_DuplicateCheckError(t *testing.T) {
	repo := &failingRepository{existsErr: errors.New("connection refused")}
	svc := NewService(repo, nil, nil, logging.New("error"))

	_, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("expected error from failed duplicate check")
	}
}
