// Package dataset defines the record schemas of the synthesized tables and
// the flat-file writers downstream consumers read. Column names are part of
// the external contract: consumers address columns by name, so the header
// strings here must never drift.
package dataset

import "strconv"

// Key identifies one row of the panel. Every derived table carries exactly
// the same key set as the base arrivals table.
type Key struct {
	Country string
	Year    int
	Month   int
}

// ArrivalRecord is one row of the base arrivals table.
type ArrivalRecord struct {
	Country      string
	CountryCode  string
	Region       string
	Year         int
	Month        int
	Arrivals     int64
	GrowthRate   float64 // proxy from the year-factor trajectory, not a trailing computation
	PerCapita    float64
	Diversity    float64
	PeakArrivals int64
	OffArrivals  int64
	Population   int64
	GDPPerCapita int
	Maturity     string
}

// ArrivalColumns is the documented column order of the arrivals file.
var ArrivalColumns = []string{
	"Country", "Country_Code", "Region", "Year", "Month",
	"Arrivals", "Arrivals_Growth_Rate", "Arrivals_Per_Capita",
	"Source_Market_Diversity", "Peak_Season_Arrivals", "Off_Season_Arrivals",
	"Population", "GDP_Per_Capita", "Tourism_Maturity",
}

func (r ArrivalRecord) Key() Key {
	return Key{Country: r.Country, Year: r.Year, Month: r.Month}
}

func (r ArrivalRecord) row() []string {
	return []string{
		r.Country,
		r.CountryCode,
		r.Region,
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		strconv.FormatInt(r.Arrivals, 10),
		strconv.FormatFloat(r.GrowthRate, 'f', 1, 64),
		strconv.FormatFloat(r.PerCapita, 'f', 6, 64),
		strconv.FormatFloat(r.Diversity, 'f', 2, 64),
		strconv.FormatInt(r.PeakArrivals, 10),
		strconv.FormatInt(r.OffArrivals, 10),
		strconv.FormatInt(r.Population, 10),
		strconv.Itoa(r.GDPPerCapita),
		r.Maturity,
	}
}

// HotelRecord is one row of the hotel bookings table.
type HotelRecord struct {
	Country       string
	CountryCode   string
	Region        string
	Year          int
	Month         int
	Bookings      int64
	DailyRate     float64
	OccupancyRate float64
	Revenue       float64
	Maturity      string
}

// HotelColumns is the documented column order of the hotel bookings file.
var HotelColumns = []string{
	"Country", "Country_Code", "Region", "Year", "Month",
	"Hotel_Bookings", "Average_Daily_Rate", "Occupancy_Rate", "Revenue",
	"Tourism_Maturity",
}

func (r HotelRecord) Key() Key {
	return Key{Country: r.Country, Year: r.Year, Month: r.Month}
}

func (r HotelRecord) row() []string {
	return []string{
		r.Country,
		r.CountryCode,
		r.Region,
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		strconv.FormatInt(r.Bookings, 10),
		strconv.FormatFloat(r.DailyRate, 'f', 2, 64),
		strconv.FormatFloat(r.OccupancyRate, 'f', 3, 64),
		strconv.FormatFloat(r.Revenue, 'f', 2, 64),
		r.Maturity,
	}
}

// FlightRecord is one row of the flight data table.
type FlightRecord struct {
	Country     string
	CountryCode string
	Region      string
	Year        int
	Month       int
	Capacity    int64
	Passengers  int64
	LoadFactor  float64
	TicketPrice float64
	Revenue     float64
	Maturity    string
}

// FlightColumns is the documented column order of the flight data file.
var FlightColumns = []string{
	"Country", "Country_Code", "Region", "Year", "Month",
	"Flight_Capacity", "Passengers", "Load_Factor", "Average_Ticket_Price",
	"Revenue", "Tourism_Maturity",
}

func (r FlightRecord) Key() Key {
	return Key{Country: r.Country, Year: r.Year, Month: r.Month}
}

func (r FlightRecord) row() []string {
	return []string{
		r.Country,
		r.CountryCode,
		r.Region,
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		strconv.FormatInt(r.Capacity, 10),
		strconv.FormatInt(r.Passengers, 10),
		strconv.FormatFloat(r.LoadFactor, 'f', 3, 64),
		strconv.FormatFloat(r.TicketPrice, 'f', 2, 64),
		strconv.FormatFloat(r.Revenue, 'f', 2, 64),
		r.Maturity,
	}
}

// RevenueRecord is one row of the tourism revenue table.
type RevenueRecord struct {
	Country        string
	CountryCode    string
	Region         string
	Year           int
	Month          int
	Total          float64
	Accommodation  float64
	Transportation float64
	FoodBeverage   float64
	Activities     float64
	PerTourist     float64
	Maturity       string
}

// RevenueColumns is the documented column order of the revenue file.
var RevenueColumns = []string{
	"Country", "Country_Code", "Region", "Year", "Month",
	"Total_Revenue", "Accommodation_Revenue", "Transportation_Revenue",
	"Food_Beverage_Revenue", "Activities_Revenue", "Revenue_Per_Tourist",
	"Tourism_Maturity",
}

func (r RevenueRecord) Key() Key {
	return Key{Country: r.Country, Year: r.Year, Month: r.Month}
}

func (r RevenueRecord) row() []string {
	return []string{
		r.Country,
		r.CountryCode,
		r.Region,
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		strconv.FormatFloat(r.Total, 'f', 2, 64),
		strconv.FormatFloat(r.Accommodation, 'f', 2, 64),
		strconv.FormatFloat(r.Transportation, 'f', 2, 64),
		strconv.FormatFloat(r.FoodBeverage, 'f', 2, 64),
		strconv.FormatFloat(r.Activities, 'f', 2, 64),
		strconv.FormatFloat(r.PerTourist, 'f', 2, 64),
		r.Maturity,
	}
}

// Summary is the dataset_summary.json schema.
type Summary struct {
	TotalCountries       int            `json:"total_countries"`
	TotalRegions         int            `json:"total_regions"`
	YearsCovered         []int          `json:"years_covered"`
	TotalRecords         int            `json:"total_records"`
	CountriesByRegion    map[string]int `json:"countries_by_region"`
	MaturityDistribution map[string]int `json:"maturity_distribution"`
}
