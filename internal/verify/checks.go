package verify

import (
	"context"
	"database/sql"
	"fmt"
)

// Check is one entry of the compatibility battery. Its Run function executes
// against the loaded store and returns a short human-readable detail line.
type Check struct {
	Name  string
	Group string
	// Gate halts the battery when the check errors or fails.
	Gate bool
	Run  func(ctx context.Context, db *sql.DB) (detail string, ok bool, err error)
}

// Check groups, in battery order.
const (
	GroupIntegrity = "integrity"
	GroupAnalytics = "analytics"
	GroupQuality   = "data quality"
)

// Battery returns the standard compatibility checks in execution order.
// The record-count check gates the rest: an empty or unreadable table makes
// every other result meaningless.
func Battery() []Check {
	return []Check{
		{
			Name:  "record count",
			Group: GroupIntegrity,
			Gate:  true,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				var n int64
				err := db.QueryRowContext(ctx,
					"SELECT COUNT(*) FROM Tourism_Arrivals").Scan(&n)
				if err != nil {
					return "", false, err
				}
				if n == 0 {
					return "no records loaded", false, nil
				}
				return fmt.Sprintf("%d records", n), true, nil
			},
		},
		{
			Name:  "year range",
			Group: GroupIntegrity,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				var minYear, maxYear, years int64
				err := db.QueryRowContext(ctx, `
					SELECT MIN(Year), MAX(Year), COUNT(DISTINCT Year)
					FROM Tourism_Arrivals`).Scan(&minYear, &maxYear, &years)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d-%d (%d years)", minYear, maxYear, years), true, nil
			},
		},
		{
			Name:  "seasonal columns",
			Group: GroupIntegrity,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				n, err := countRows(ctx, db, `
					SELECT Country,
					       AVG(Peak_Season_Arrivals) AS avg_peak,
					       AVG(Off_Season_Arrivals) AS avg_off
					FROM Tourism_Arrivals
					GROUP BY Country
					LIMIT 5`)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d countries sampled", n), true, nil
			},
		},
		{
			Name:  "yearly totals",
			Group: GroupAnalytics,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				n, err := countRows(ctx, db, `
					SELECT Country, Year, SUM(Arrivals) AS yearly_arrivals
					FROM Tourism_Arrivals
					WHERE Year >= 2020
					GROUP BY Country, Year
					ORDER BY Country, Year
					LIMIT 10`)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d rows sampled", n), true, nil
			},
		},
		{
			Name:  "regional coverage",
			Group: GroupAnalytics,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				n, err := countRows(ctx, db, `
					SELECT Region, COUNT(DISTINCT Country) AS country_count
					FROM Tourism_Arrivals
					GROUP BY Region`)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d regions", n), true, nil
			},
		},
		{
			Name:  "market positioning",
			Group: GroupAnalytics,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				n, err := countRows(ctx, db, `
					WITH YearlyTotals AS (
					  SELECT Country, Year, SUM(Arrivals) AS YearlyArrivals
					  FROM Tourism_Arrivals
					  WHERE Year >= (SELECT MAX(Year) FROM Tourism_Arrivals) - 2
					  GROUP BY Country, Year
					),
					ValidatedData AS (
					  SELECT Country, Year, YearlyArrivals
					  FROM YearlyTotals
					  WHERE Country IN (
					    SELECT Country
					    FROM YearlyTotals
					    GROUP BY Country
					    HAVING COUNT(*) = 3
					  )
					)
					SELECT Country, COUNT(*) AS data_points
					FROM ValidatedData
					GROUP BY Country
					LIMIT 5`)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d countries with complete 3-year data", n), true, nil
			},
		},
		{
			Name:  "seasonal arbitrage",
			Group: GroupAnalytics,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				n, err := countRows(ctx, db, `
					SELECT Country,
					       AVG(Peak_Season_Arrivals) AS avg_peak,
					       AVG(Off_Season_Arrivals) AS avg_off
					FROM Tourism_Arrivals
					GROUP BY Country
					HAVING avg_off > 0
					LIMIT 5`)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d countries sampled", n), true, nil
			},
		},
		{
			Name:  "market concentration",
			Group: GroupAnalytics,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				n, err := countRows(ctx, db, `
					SELECT Country, COUNT(*) AS monthly_records
					FROM Tourism_Arrivals
					WHERE Year = (SELECT MAX(Year) FROM Tourism_Arrivals)
					GROUP BY Country
					LIMIT 5`)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d countries sampled", n), true, nil
			},
		},
		{
			Name:  "null audit",
			Group: GroupQuality,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				var total, nullArrivals, nullPeak, nullOff int64
				err := db.QueryRowContext(ctx, `
					SELECT COUNT(*),
					       SUM(CASE WHEN Arrivals IS NULL THEN 1 ELSE 0 END),
					       SUM(CASE WHEN Peak_Season_Arrivals IS NULL THEN 1 ELSE 0 END),
					       SUM(CASE WHEN Off_Season_Arrivals IS NULL THEN 1 ELSE 0 END)
					FROM Tourism_Arrivals`).Scan(&total, &nullArrivals, &nullPeak, &nullOff)
				if err != nil {
					return "", false, err
				}
				nulls := nullArrivals + nullPeak + nullOff
				if nulls > 0 {
					return fmt.Sprintf("%d null values across arrival columns", nulls), false, nil
				}
				return fmt.Sprintf("no nulls in %d records", total), true, nil
			},
		},
		{
			Name:  "coverage profile",
			Group: GroupQuality,
			Run: func(ctx context.Context, db *sql.DB) (string, bool, error) {
				var countries, regions int64
				err := db.QueryRowContext(ctx, `
					SELECT COUNT(DISTINCT Country), COUNT(DISTINCT Region)
					FROM Tourism_Arrivals`).Scan(&countries, &regions)
				if err != nil {
					return "", false, err
				}
				return fmt.Sprintf("%d countries, %d regions", countries, regions), true, nil
			},
		},
	}
}

// countRows runs a query and counts its result rows.
func countRows(ctx context.Context, db *sql.DB, query string) (int, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
	}
	return n, rows.Err()
}
