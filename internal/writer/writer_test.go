package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/logging"
	"github.com/mmrzaf/dsdgen/internal/table"
)

func testSession(t *testing.T, options *config.Options) *config.Session {
	t.Helper()
	if options.Scale == 0 {
		options.Scale = 1
	}
	if options.Suffix == "" {
		options.Suffix = config.DefaultSuffix
	}
	if options.Separator == "" {
		options.Separator = config.DefaultSeparator
	}
	if options.Parallelism == 0 {
		options.Parallelism = 1
	}
	session, err := options.Session()
	if err != nil {
		t.Fatalf("building session: %v", err)
	}
	return session
}

func TestChunkBounds(t *testing.T) {
	tests := []struct {
		rowCount    int64
		parallelism int
		chunk       int
		wantFirst   int64
		wantLast    int64
	}{
		{10, 1, 1, 1, 10},
		{10, 3, 1, 1, 4},
		{10, 3, 2, 5, 7},
		{10, 3, 3, 8, 10},
		{7, 3, 1, 1, 3},
		{7, 3, 2, 4, 5},
		{7, 3, 3, 6, 7},
		{5, 5, 3, 3, 3},
		{73049, 4, 1, 1, 18263},
		{73049, 4, 4, 54788, 73049},
	}
	for _, tt := range tests {
		first, last := ChunkBounds(tt.rowCount, tt.parallelism, tt.chunk)
		if first != tt.wantFirst || last != tt.wantLast {
			t.Errorf("ChunkBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.rowCount, tt.parallelism, tt.chunk, first, last, tt.wantFirst, tt.wantLast)
		}
	}
}

func TestChunkBoundsCoverEveryRow(t *testing.T) {
	const rowCount = 101
	for parallelism := 1; parallelism <= 7; parallelism++ {
		next := int64(1)
		for chunk := 1; chunk <= parallelism; chunk++ {
			first, last := ChunkBounds(rowCount, parallelism, chunk)
			if first != next {
				t.Fatalf("parallelism %d chunk %d starts at %d, want %d", parallelism, chunk, first, next)
			}
			next = last + 1
		}
		if next != rowCount+1 {
			t.Fatalf("parallelism %d ends at %d, want %d", parallelism, next-1, rowCount)
		}
	}
}

func TestFormatRow(t *testing.T) {
	tests := []struct {
		values    []string
		terminate bool
		want      string
	}{
		{[]string{"a", "b", "c"}, true, "a|b|c|\n"},
		{[]string{"a", "b", "c"}, false, "a|b|c\n"},
		{[]string{"a", "", "c"}, true, "a||c|\n"},
		{[]string{"a"}, false, "a\n"},
	}
	for _, tt := range tests {
		got := FormatRow(tt.values, '|', tt.terminate)
		if got != tt.want {
			t.Errorf("FormatRow(%v, '|', %v) = %q, want %q", tt.values, tt.terminate, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	single := testSession(t, &config.Options{Directory: "."})
	if got := FileName(table.Reason, single); got != "reason.dat" {
		t.Errorf("FileName = %q, want reason.dat", got)
	}

	parallel := testSession(t, &config.Options{Directory: ".", Parallelism: 4})
	if got := FileName(table.Reason, parallel.WithChunkNumber(2)); got != "reason_2_4.dat" {
		t.Errorf("FileName = %q, want reason_2_4.dat", got)
	}
}

func TestWriteTableProducesDelimitedRows(t *testing.T) {
	dir := t.TempDir()
	session := testSession(t, &config.Options{Directory: dir})
	w := NewWriter(session, logging.NewLogger("error"))

	stats, err := w.WriteTable(table.Reason)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Rows != 35 {
		t.Errorf("rows = %d, want 35", stats.Rows)
	}
	if len(stats.Files) != 1 {
		t.Fatalf("files = %v, want one file", stats.Files)
	}

	content, err := os.ReadFile(filepath.Join(dir, "reason.dat"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 35 {
		t.Fatalf("line count = %d, want 35", len(lines))
	}
	for i, line := range lines {
		if strings.Count(line, "|") != 3 {
			t.Errorf("line %d has %d separators, want 3: %q", i+1, strings.Count(line, "|"), line)
		}
		if !strings.HasSuffix(line, "|") {
			t.Errorf("line %d is not terminated: %q", i+1, line)
		}
	}
	if !strings.HasPrefix(lines[0], "1|AAAAAAAABAAAAAAA|") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestWriteTableSplitsChunks(t *testing.T) {
	dir := t.TempDir()

	whole := testSession(t, &config.Options{Directory: dir})
	if _, err := NewWriter(whole, logging.NewLogger("error")).WriteTable(table.ShipMode); err != nil {
		t.Fatal(err)
	}
	wholeContent, err := os.ReadFile(filepath.Join(dir, "ship_mode.dat"))
	if err != nil {
		t.Fatal(err)
	}

	split := testSession(t, &config.Options{Directory: dir, Parallelism: 4})
	stats, err := NewWriter(split, logging.NewLogger("error")).WriteTable(table.ShipMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.Files) != 4 {
		t.Fatalf("files = %v, want four", stats.Files)
	}

	var combined strings.Builder
	for chunk := 1; chunk <= 4; chunk++ {
		name := FileName(table.ShipMode, split.WithChunkNumber(chunk))
		part, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		combined.Write(part)
	}
	if combined.String() != string(wholeContent) {
		t.Error("concatenated chunk output differs from single-chunk output")
	}
}

func TestWriteTableRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	session := testSession(t, &config.Options{Directory: dir})
	w := NewWriter(session, logging.NewLogger("error"))

	if _, err := w.WriteTable(table.Reason); err != nil {
		t.Fatal(err)
	}
	if _, err := w.WriteTable(table.Reason); err == nil {
		t.Fatal("second write did not fail")
	} else if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v", err)
	}

	forced := testSession(t, &config.Options{Directory: dir, Overwrite: true})
	if _, err := NewWriter(forced, logging.NewLogger("error")).WriteTable(table.Reason); err != nil {
		t.Errorf("overwrite write failed: %v", err)
	}
}

func TestWriteAllHonorsTableRestriction(t *testing.T) {
	dir := t.TempDir()
	session := testSession(t, &config.Options{Directory: dir, Table: "income_band"})
	stats, err := NewWriter(session, logging.NewLogger("error")).WriteAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].Table != "income_band" {
		t.Fatalf("stats = %+v, want only income_band", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "income_band.dat")); err != nil {
		t.Errorf("income_band.dat missing: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}
