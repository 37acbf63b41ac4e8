package dataset

import (
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// File names of the generated flat files.
const (
	ArrivalsFile = "Tourism_Arrivals_Enhanced.csv"
	HotelsFile   = "Hotel_Bookings_Enhanced.csv"
	FlightsFile  = "Flight_Data_Enhanced.csv"
	RevenueFile  = "Tourism_Revenue_Enhanced.csv"
	SummaryFile  = "dataset_summary.json"
	ScriptFile   = "compatibility_script.sql"
)

// compatibilityScript documents table-creation statements for external
// relational systems. Informational only, never executed.
//
//go:embed compatibility_script.sql
var compatibilityScript string

func writeCSV[T any](path string, columns []string, recs []T, row func(T) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, rec := range recs {
		if err := w.Write(row(rec)); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

// WriteArrivals writes the base arrivals table as CSV.
func WriteArrivals(path string, recs []ArrivalRecord) error {
	return writeCSV(path, ArrivalColumns, recs, ArrivalRecord.row)
}

// WriteHotelBookings writes the hotel bookings table as CSV.
func WriteHotelBookings(path string, recs []HotelRecord) error {
	return writeCSV(path, HotelColumns, recs, HotelRecord.row)
}

// WriteFlightData writes the flight data table as CSV.
func WriteFlightData(path string, recs []FlightRecord) error {
	return writeCSV(path, FlightColumns, recs, FlightRecord.row)
}

// WriteRevenue writes the tourism revenue table as CSV.
func WriteRevenue(path string, recs []RevenueRecord) error {
	return writeCSV(path, RevenueColumns, recs, RevenueRecord.row)
}

// WriteSummary writes the dataset summary as indented JSON.
func WriteSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteCompatibilityScript writes the informational DDL reference file.
func WriteCompatibilityScript(path string) error {
	if err := os.WriteFile(path, []byte(compatibilityScript), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
