package casebase

import (
	"fmt"
	"os"
	"time"

	"github.com/calbisu/menumind/internal/models"
	"github.com/goccy/go-json"
)

const snapshotVersion = "1.0"

type snapshotMetadata struct {
	Version    string    `json:"version"`
	TotalCases int       `json:"total_cases"`
	SavedAt    time.Time `json:"saved_at"`
}

type snapshot struct {
	Cases    []*models.Case   `json:"cases"`
	Metadata snapshotMetadata `json:"metadata"`
}

// Save serializes the case list with metadata to a JSON document.
func (cb *CaseBase) Save(path string) error {
	cb.mu.RLock()
	snap := snapshot{
		Cases: cb.cases,
		Metadata: snapshotMetadata{
			Version:    snapshotVersion,
			TotalCases: len(cb.cases),
			SavedAt:    time.Now().UTC(),
		},
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	cb.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to serialize case base: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write case base to %s: %w", path, err)
	}
	cb.log.WithFields(map[string]interface{}{
		"path":  path,
		"cases": snap.Metadata.TotalCases,
	}).Info("case base saved")
	return nil
}

// Load reconstructs the case graph from a JSON document written by Save
// and rebuilds every index. The dish and beverage pools are untouched.
func (cb *CaseBase) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read case base from %s: %w", path, err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse case base %s: %w", path, err)
	}

	cb.mu.Lock()
	cb.cases = snap.Cases
	cb.rebuildLocked()
	cb.mu.Unlock()

	cb.log.WithFields(map[string]interface{}{
		"path":    path,
		"cases":   len(snap.Cases),
		"version": snap.Metadata.Version,
	}).Info("case base loaded")
	return nil
}
