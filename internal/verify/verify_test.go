package verify

import (
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/touriq/internal/dataset"
	"github.com/leapstack-labs/touriq/internal/generate"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func writeGeneratedArrivals(t *testing.T, dir string) string {
	t.Helper()
	g, err := generate.New(generate.Config{Seed: 42})
	require.NoError(t, err)
	path := filepath.Join(dir, dataset.ArrivalsFile)
	require.NoError(t, dataset.WriteArrivals(path, g.Arrivals()))
	return path
}

func TestLoadCSV_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	path := writeGeneratedArrivals(t, t.TempDir())

	n, err := store.LoadCSV(context.Background(), "Tourism_Arrivals", dataset.ArrivalColumns, path)
	require.NoError(t, err)
	assert.Equal(t, 65*5*12, n)

	var countries int
	require.NoError(t, store.DB().QueryRow(
		"SELECT COUNT(DISTINCT Country) FROM Tourism_Arrivals").Scan(&countries))
	assert.Equal(t, 65, countries)
}

func TestLoadCSV_ColumnOrderIndependent(t *testing.T) {
	store := newTestStore(t)

	// Header deliberately reordered relative to the published column order.
	path := filepath.Join(t.TempDir(), "shuffled.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.Write([]string{"Year", "Country", "Month", "Arrivals"}))
	require.NoError(t, w.Write([]string{"2020", "France", "7", "12345"}))
	w.Flush()
	require.NoError(t, f.Close())

	n, err := store.LoadCSV(context.Background(), "Tourism_Arrivals",
		[]string{"Country", "Year", "Month", "Arrivals"}, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var country string
	var arrivals int64
	require.NoError(t, store.DB().QueryRow(
		"SELECT Country, Arrivals FROM Tourism_Arrivals").Scan(&country, &arrivals))
	assert.Equal(t, "France", country)
	assert.Equal(t, int64(12345), arrivals)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadCSV(context.Background(), "Tourism_Arrivals",
		dataset.ArrivalColumns, filepath.Join(t.TempDir(), dataset.ArrivalsFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'touriq generate' first")
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(t.TempDir(), "partial.csv")
	require.NoError(t, os.WriteFile(path, []byte("Country,Year\nFrance,2020\n"), 0o644))

	_, err := store.LoadCSV(context.Background(), "Tourism_Arrivals",
		[]string{"Country", "Year", "Month"}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "Month"`)
}

func TestVerifier_FullPass(t *testing.T) {
	store := newTestStore(t)
	path := writeGeneratedArrivals(t, t.TempDir())

	n, err := store.LoadCSV(context.Background(), "Tourism_Arrivals", dataset.ArrivalColumns, path)
	require.NoError(t, err)

	report := NewVerifier(store, nil).Run(context.Background(), path, n)

	assert.True(t, report.OK())
	assert.False(t, report.Halted)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, len(Battery()), report.Passed)
	assert.Zero(t, report.Failed)
	assert.Zero(t, report.Errored)
	assert.Zero(t, report.Skipped)

	for _, c := range report.Checks {
		assert.Equal(t, StatusPass, c.Status, c.Name)
		assert.NotEmpty(t, c.Detail, c.Name)
	}
}

func TestVerifier_EmptyTableHaltsBattery(t *testing.T) {
	store := newTestStore(t)

	report := NewVerifier(store, nil).Run(context.Background(), "none", 0)

	assert.False(t, report.OK())
	assert.True(t, report.Halted)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, len(Battery())-1, report.Skipped)

	require.NotEmpty(t, report.Checks)
	gate := report.Checks[0]
	assert.Equal(t, "record count", gate.Name)
	assert.Equal(t, StatusFail, gate.Status)
	assert.Equal(t, "no records loaded", gate.Detail)

	for _, c := range report.Checks[1:] {
		assert.Equal(t, StatusSkipped, c.Status, c.Name)
	}
}

func TestVerifier_MissingTableHaltsBattery(t *testing.T) {
	// Schema never initialized, so the gate check errors instead of failing.
	store, err := OpenStore(nil)
	require.NoError(t, err)
	defer store.Close()

	report := NewVerifier(store, nil).Run(context.Background(), "none", 0)

	assert.True(t, report.Halted)
	assert.Equal(t, 1, report.Errored)
	assert.Equal(t, StatusError, report.Checks[0].Status)
	assert.NotEmpty(t, report.Checks[0].Error)
}

func TestVerifier_InvalidQueryDoesNotAbortBattery(t *testing.T) {
	store := newTestStore(t)
	path := writeGeneratedArrivals(t, t.TempDir())
	_, err := store.LoadCSV(context.Background(), "Tourism_Arrivals", dataset.ArrivalColumns, path)
	require.NoError(t, err)

	broken := Check{
		Name:  "broken",
		Group: GroupAnalytics,
		Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
			_, err := countRows(ctx, db, "SELECT FROM nowhere")
			return "", false, err
		},
	}

	v := NewVerifier(store, nil)
	battery := Battery()
	v.checks = make([]Check, 0, len(battery)+1)
	v.checks = append(v.checks, battery[0], broken)
	v.checks = append(v.checks, battery[1:]...)

	report := v.Run(context.Background(), path, 0)

	assert.False(t, report.Halted)
	assert.Equal(t, 1, report.Errored)
	assert.Equal(t, len(Battery()), report.Passed)

	got := report.Checks[1]
	assert.Equal(t, "broken", got.Name)
	assert.Equal(t, StatusError, got.Status)
	assert.NotEmpty(t, got.Error)
}

func TestVerifier_DriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(assert.AnError)

	report := NewVerifier(&Store{db: db}, nil).Run(context.Background(), "mock", 0)

	assert.True(t, report.Halted)
	assert.Equal(t, StatusError, report.Checks[0].Status)
	assert.Contains(t, report.Checks[0].Error, assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
