package target

import (
	"fmt"
	"time"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/logging"
	"github.com/mmrzaf/dsdgen/internal/rowgen"
	"github.com/mmrzaf/dsdgen/internal/table"
)

// Target is a database a generated table can be loaded into.
type Target interface {
	Connect() error
	Close() error
	CreateTableIfNotExists(t table.Table) error
	TruncateTable(t table.Table) error
	InsertBatch(t table.Table, columns []Column, rows [][]interface{}) error
}

const DefaultBatchSize = 1000

// Loader generates rows and streams them into a target in batches.
type Loader struct {
	session   *config.Session
	logger    *logging.Logger
	batchSize int
}

func NewLoader(session *config.Session, logger *logging.Logger, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{session: session, logger: logger, batchSize: batchSize}
}

// LoadAll loads every dimension table, or only the session's table when one
// was selected. The caller owns the target connection.
func (l *Loader) LoadAll(tgt Target) (int64, error) {
	tables := table.Dimensions()
	if l.session.GenerateOnlyOneTable() {
		tables = []table.Table{l.session.OnlyTableToGenerate()}
	}

	var totalRows int64
	for _, t := range tables {
		rows, err := l.LoadTable(tgt, t)
		if err != nil {
			return totalRows, err
		}
		totalRows += rows
	}
	return totalRows, nil
}

// LoadTable generates one table and inserts its rows.
func (l *Loader) LoadTable(tgt Target, t table.Table) (int64, error) {
	columns, err := Columns(t)
	if err != nil {
		return 0, err
	}
	rowCount, err := l.session.Scaling().RowCount(t)
	if err != nil {
		return 0, fmt.Errorf("resolving row count for %s: %w", t.Name(), err)
	}

	if err := tgt.CreateTableIfNotExists(t); err != nil {
		return 0, fmt.Errorf("creating table %s: %w", t.Name(), err)
	}
	if l.session.ShouldOverwrite() {
		if err := tgt.TruncateTable(t); err != nil {
			return 0, fmt.Errorf("truncating table %s: %w", t.Name(), err)
		}
	}

	generator, err := rowgen.NewRowGenerator(t)
	if err != nil {
		return 0, err
	}

	l.logger.Info("Loading %s: %d rows", t.Name(), rowCount)
	start := time.Now()

	nullString := l.session.NullString()
	batch := make([][]interface{}, 0, l.batchSize)
	var inserted int64
	for rowNumber := int64(1); rowNumber <= rowCount; rowNumber++ {
		result, err := generator.GenerateRowAndChildRows(rowNumber, l.session)
		if err != nil {
			return inserted, fmt.Errorf("table %s row %d: %w", t.Name(), rowNumber, err)
		}
		for _, row := range result.Rows {
			values := row.Values(nullString)
			args := make([]interface{}, len(values))
			for i, v := range values {
				if v == nullString {
					args[i] = nil
				} else {
					args[i] = v
				}
			}
			batch = append(batch, args)
		}
		if result.ShouldEndRow {
			generator.ConsumeRemainingSeedsForRow()
		}

		if len(batch) >= l.batchSize {
			if err := tgt.InsertBatch(t, columns, batch); err != nil {
				return inserted, fmt.Errorf("inserting into %s: %w", t.Name(), err)
			}
			inserted += int64(len(batch))
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := tgt.InsertBatch(t, columns, batch); err != nil {
			return inserted, fmt.Errorf("inserting final batch into %s: %w", t.Name(), err)
		}
		inserted += int64(len(batch))
	}

	l.logger.Info("Loaded %s: %d rows, %.2fs", t.Name(), inserted, time.Since(start).Seconds())
	return inserted, nil
}
