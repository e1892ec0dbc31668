package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Lead is the portal intake payload. Timestamp and Source are stamped by the
// processor before the record is written.
type Lead struct {
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Company            string    `json:"company,omitempty"`
	InvestmentInterest string    `json:"investment_interest,omitempty"`
	Message            string    `json:"message,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
	Source             string    `json:"source"`
}

// FileStore persists each lead as one timestamp-named JSON file.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("portal: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the lead and returns the file path.
func (s *FileStore) Save(ctx context.Context, lead *Lead) (string, error) {
	name := fmt.Sprintf("lead_%s_%s.json", lead.Timestamp.Format("20060102_150405"), lead.Email)
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(lead, "", "  ")
	if err != nil {
		return "", fmt.Errorf("portal: marshal lead: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("portal: write lead file: %w", err)
	}
	return path, nil
}
