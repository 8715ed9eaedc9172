package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mmrzaf/dsdgen/internal/table"
	"github.com/mmrzaf/dsdgen/internal/target"
)

type SQLiteTarget struct {
	path string
	db   *sql.DB
}

func NewSQLiteTarget(path string) *SQLiteTarget {
	return &SQLiteTarget{path: path}
}

func (t *SQLiteTarget) Connect() error {
	db, err := sql.Open("sqlite3", t.path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	t.db = db
	return nil
}

func (t *SQLiteTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *SQLiteTarget) CreateTableIfNotExists(tbl table.Table) error {
	query := `SELECT name FROM sqlite_master WHERE type='table' AND name=?`
	var name string
	err := t.db.QueryRow(query, tbl.Name()).Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	columns, err := target.Columns(tbl)
	if err != nil {
		return err
	}
	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		nullable := ""
		if col.NotNull {
			nullable = " NOT NULL"
		}
		columnDefs[i] = fmt.Sprintf("%s %s%s", col.Name, mapColumnType(col.Type), nullable)
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)",
		tbl.Name(), strings.Join(columnDefs, ", "))

	_, err = t.db.Exec(createSQL)
	return err
}

// mapColumnType reduces the declared SQL type to a SQLite storage affinity.
func mapColumnType(sqlType string) string {
	switch {
	case sqlType == "integer":
		return "INTEGER"
	case strings.HasPrefix(sqlType, "decimal"):
		return "REAL"
	default:
		return "TEXT"
	}
}

func (t *SQLiteTarget) TruncateTable(tbl table.Table) error {
	_, err := t.db.Exec(fmt.Sprintf("DELETE FROM %s", tbl.Name()))
	return err
}

func (t *SQLiteTarget) InsertBatch(tbl table.Table, columns []target.Column, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	columnNames := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		columnNames[i] = col.Name
		placeholders[i] = "?"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tbl.Name(), strings.Join(columnNames, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			return err
		}
	}

	return tx.Commit()
}
