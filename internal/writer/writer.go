package writer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/logging"
	"github.com/mmrzaf/dsdgen/internal/rowgen"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// TableStats reports one table's generation outcome.
type TableStats struct {
	Table           string   `json:"table"`
	Rows            int64    `json:"rows"`
	Files           []string `json:"files"`
	DurationSeconds float64  `json:"duration_seconds"`
}

// Writer generates tables into flat files under the session's target
// directory.
type Writer struct {
	session *config.Session
	logger  *logging.Logger
}

func NewWriter(session *config.Session, logger *logging.Logger) *Writer {
	return &Writer{session: session, logger: logger}
}

// WriteAll generates every dimension table, or only the session's table when
// one was selected.
func (w *Writer) WriteAll() ([]*TableStats, error) {
	tables := table.Dimensions()
	if w.session.GenerateOnlyOneTable() {
		tables = []table.Table{w.session.OnlyTableToGenerate()}
	}

	stats := make([]*TableStats, 0, len(tables))
	for _, t := range tables {
		st, err := w.WriteTable(t)
		if err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, nil
}

// WriteTable generates one table, splitting its rows into parallelism chunks.
func (w *Writer) WriteTable(t table.Table) (*TableStats, error) {
	rowCount, err := w.session.Scaling().RowCount(t)
	if err != nil {
		return nil, fmt.Errorf("resolving row count for %s: %w", t.Name(), err)
	}

	parallelism := w.session.Parallelism()
	w.logger.Info("Generating %s: %d rows in %d chunk(s)", t.Name(), rowCount, parallelism)
	start := time.Now()

	files := make([]string, parallelism)
	var wg sync.WaitGroup
	errs := make([]error, parallelism)
	for chunk := 1; chunk <= parallelism; chunk++ {
		wg.Add(1)
		go func(chunk int) {
			defer wg.Done()
			path, err := w.writeChunk(t, rowCount, chunk)
			if err != nil {
				errs[chunk-1] = fmt.Errorf("table %s chunk %d: %w", t.Name(), chunk, err)
				return
			}
			files[chunk-1] = path
		}(chunk)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	duration := time.Since(start)
	w.logger.Info("Finished %s: %d rows, %.2fs", t.Name(), rowCount, duration.Seconds())
	return &TableStats{
		Table:           t.Name(),
		Rows:            rowCount,
		Files:           files,
		DurationSeconds: duration.Seconds(),
	}, nil
}

func (w *Writer) writeChunk(t table.Table, rowCount int64, chunk int) (string, error) {
	session := w.session.WithChunkNumber(chunk)
	firstRow, lastRow := ChunkBounds(rowCount, session.Parallelism(), chunk)

	path := filepath.Join(session.TargetDirectory(), FileName(t, session))
	if !session.ShouldOverwrite() {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("output file %s already exists (use --overwrite)", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	buf := bufio.NewWriter(f)

	generator, err := rowgen.NewRowGenerator(t)
	if err != nil {
		return "", err
	}
	if firstRow > 1 {
		generator.SkipRowsUntilStartingRowNumber(firstRow)
	}

	w.logger.Debug("Chunk %d of %s: rows %d..%d -> %s", chunk, t.Name(), firstRow, lastRow, path)

	for rowNumber := firstRow; rowNumber <= lastRow; rowNumber++ {
		result, err := generator.GenerateRowAndChildRows(rowNumber, session)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", rowNumber, err)
		}
		for _, row := range result.Rows {
			line := FormatRow(row.Values(session.NullString()), session.Separator(),
				session.TerminateRowsWithSeparator())
			if _, err := buf.WriteString(line); err != nil {
				return "", fmt.Errorf("writing row %d: %w", rowNumber, err)
			}
		}
		if result.ShouldEndRow {
			generator.ConsumeRemainingSeedsForRow()
		}
	}

	if err := buf.Flush(); err != nil {
		return "", fmt.Errorf("flushing output file: %w", err)
	}
	return path, nil
}

// FileName returns the output file name for the session's chunk.
func FileName(t table.Table, session *config.Session) string {
	if session.Parallelism() == 1 {
		return t.Name() + session.Suffix()
	}
	return fmt.Sprintf("%s_%d_%d%s", t.Name(), session.ChunkNumber(), session.Parallelism(), session.Suffix())
}

// ChunkBounds returns the inclusive 1-based row range of a chunk. Leftover
// rows go to the earliest chunks so ranges stay contiguous.
func ChunkBounds(rowCount int64, parallelism, chunkNumber int) (int64, int64) {
	chunkSize := rowCount / int64(parallelism)
	extraRows := rowCount % int64(parallelism)

	firstRow := int64(1)
	for i := 1; i < chunkNumber; i++ {
		firstRow += chunkSize
		if int64(i) <= extraRows {
			firstRow++
		}
	}

	lastRow := firstRow + chunkSize - 1
	if int64(chunkNumber) <= extraRows {
		lastRow++
	}
	return firstRow, lastRow
}

// FormatRow renders one delimiter-separated output line.
func FormatRow(values []string, separator rune, terminate bool) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteRune(separator)
		}
		b.WriteString(v)
	}
	if terminate {
		b.WriteRune(separator)
	}
	b.WriteByte('\n')
	return b.String()
}
