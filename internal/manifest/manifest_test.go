package manifest

import (
	"testing"
	"time"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/writer"
)

func TestNewSumsRows(t *testing.T) {
	stats := []*writer.TableStats{
		{Table: "reason", Rows: 35, Files: []string{"reason.dat"}},
		{Table: "ship_mode", Rows: 20, Files: []string{"ship_mode.dat"}},
	}
	m, err := New(config.DefaultSession(), time.Now(), stats)
	if err != nil {
		t.Fatal(err)
	}
	if m.TotalRows != 55 {
		t.Errorf("TotalRows = %d, want 55", m.TotalRows)
	}
	if m.RunID == "" {
		t.Error("RunID is empty")
	}
	if m.OptionsHash == "" {
		t.Error("OptionsHash is empty")
	}
	if m.Scale != 1 {
		t.Errorf("Scale = %v, want 1", m.Scale)
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	session := config.DefaultSession()
	first, err := New(session, time.Now(), nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(session, time.Now(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.RunID == second.RunID {
		t.Errorf("two runs share RunID %s", first.RunID)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	stats := []*writer.TableStats{
		{Table: "income_band", Rows: 20, Files: []string{"income_band.dat"}, DurationSeconds: 0.01},
	}
	startedAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	m, err := New(config.DefaultSession(), startedAt, stats)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Write(dir); err != nil {
		t.Fatal(err)
	}

	loaded, err := Read(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.RunID != m.RunID {
		t.Errorf("RunID = %q, want %q", loaded.RunID, m.RunID)
	}
	if !loaded.StartedAt.Equal(startedAt) {
		t.Errorf("StartedAt = %v, want %v", loaded.StartedAt, startedAt)
	}
	if loaded.TotalRows != 20 {
		t.Errorf("TotalRows = %d, want 20", loaded.TotalRows)
	}
	if len(loaded.Tables) != 1 || loaded.Tables[0].Table != "income_band" {
		t.Errorf("Tables = %+v", loaded.Tables)
	}
}

func TestReadMissingManifest(t *testing.T) {
	if _, err := Read(t.TempDir()); err == nil {
		t.Fatal("reading a missing manifest did not fail")
	}
}
