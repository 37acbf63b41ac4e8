// Package verify loads generated CSV files into an ephemeral SQLite database
// and runs the compatibility check battery against it. The store exists only
// for the lifetime of one verification run.
package verify

import (
	"context"
	"database/sql"
	"encoding/csv"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/leapstack-labs/touriq/internal/dataset"
)

//go:embed schema.sql
var schemaSQL string

// Table binds a SQL table name to the CSV file and column set it loads from.
type Table struct {
	Name    string
	File    string
	Columns []string
}

// Tables lists every loadable table. The arrivals table is the only one the
// standard battery queries; the rest are available to ad-hoc queries.
var Tables = []Table{
	{Name: "Tourism_Arrivals", File: dataset.ArrivalsFile, Columns: dataset.ArrivalColumns},
	{Name: "Hotel_Bookings", File: dataset.HotelsFile, Columns: dataset.HotelColumns},
	{Name: "Flight_Data", File: dataset.FlightsFile, Columns: dataset.FlightColumns},
	{Name: "Tourism_Revenue", File: dataset.RevenueFile, Columns: dataset.RevenueColumns},
}

// Store wraps the in-memory SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenStore opens an in-memory SQLite database.
func OpenStore(logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	// The in-memory database lives on a single connection; a second
	// connection would see an empty database.
	db.SetMaxOpenConns(1)

	return &Store{db: db, logger: logger}, nil
}

// Close closes the database, discarding all loaded data.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB exposes the underlying handle for ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// InitSchema creates the verification tables.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// LoadCSV loads one CSV file into the named table and returns the number of
// rows inserted. Columns are matched by header name, so the file's column
// order does not matter; a header missing any expected column is an error.
func (s *Store) LoadCSV(ctx context.Context, table string, columns []string, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("dataset file %s not found (run 'touriq generate' first)", path)
		}
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	// Map each expected column to its position in this file.
	index := make([]int, len(columns))
	for i, col := range columns {
		pos := -1
		for j, h := range header {
			if h == col {
				pos = j
				break
			}
		}
		if pos == -1 {
			return 0, fmt.Errorf("%s: missing column %q", path, col)
		}
		index[i] = pos
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders,
	))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	count := 0
	args := make([]any, len(columns))
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for i, pos := range index {
			args[i] = record[pos]
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit load of %s: %w", table, err)
	}

	s.logger.Debug("loaded table", "table", table, "rows", count, "file", path)
	return count, nil
}
