package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/hashing"
	"github.com/mmrzaf/dsdgen/internal/writer"
)

const FileName = "dsdgen_manifest.json"

// Manifest records one generation run: what was generated, with which
// options, and how long it took. It lands next to the data files so a run
// can be identified and reproduced later.
type Manifest struct {
	RunID       string               `json:"run_id"`
	StartedAt   time.Time            `json:"started_at"`
	CompletedAt time.Time            `json:"completed_at"`
	Scale       float64              `json:"scale"`
	CommandLine string               `json:"command_line"`
	OptionsHash string               `json:"options_hash"`
	TotalRows   int64                `json:"total_rows"`
	Tables      []*writer.TableStats `json:"tables"`
}

// New builds a manifest for a completed run.
func New(session *config.Session, startedAt time.Time, stats []*writer.TableStats) (*Manifest, error) {
	optionsHash, err := hashing.HashSession(session)
	if err != nil {
		return nil, fmt.Errorf("hashing session options: %w", err)
	}

	m := &Manifest{
		RunID:       uuid.New().String(),
		StartedAt:   startedAt,
		CompletedAt: time.Now(),
		Scale:       session.Scaling().Scale(),
		CommandLine: session.CommandLine(),
		OptionsHash: optionsHash,
		Tables:      stats,
	}
	for _, st := range stats {
		m.TotalRows += st.Rows
	}
	return m, nil
}

// Write stores the manifest in the given directory.
func (m *Manifest) Write(directory string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(directory, FileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

// Read loads a manifest previously written to the directory.
func Read(directory string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(directory, FileName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
