// Package reference holds the hand-authored country, seasonal, and macro
// reference tables the dataset generator draws from. The tables are static
// and validated once at generation start; a malformed entry is a
// configuration error and aborts before anything is written.
package reference

import (
	"fmt"
	"sort"
)

// Maturity classifies a destination's tourism market.
type Maturity string

const (
	MaturityMature   Maturity = "mature"
	MaturityEmerging Maturity = "emerging"
)

// CountryProfile describes the static attributes of one destination country.
type CountryProfile struct {
	Name         string
	Region       string
	Population   int64
	GDPPerCapita int
	Maturity     Maturity
}

// Years is the panel coverage, ascending. Consumers depend on this exact
// range (2018-2022).
var Years = []int{2018, 2019, 2020, 2021, 2022}

// yearFactors model the multi-year demand trajectory:
// baseline, pre-shock growth, shock, partial recovery, strong recovery.
var yearFactors = map[int]float64{
	2018: 1.0,
	2019: 1.05,
	2020: 0.3,
	2021: 0.6,
	2022: 0.85,
}

// regionalMultipliers scale base arrivals per region.
var regionalMultipliers = map[string]float64{
	"Europe":             1.2,
	"Eastern Europe":     0.9,
	"North America":      1.0,
	"Central America":    0.7,
	"Caribbean":          0.8,
	"Asia":               0.8,
	"Middle East":        0.6,
	"Oceania":            0.4,
	"Pacific Islands":    0.3,
	"Africa":             0.3,
	"Sub-Saharan Africa": 0.2,
	"South America":      0.5,
}

// seasonalCurves hold one multiplier per calendar month, January first.
var seasonalCurves = map[string][12]float64{
	"Europe":             {0.6, 0.5, 0.7, 0.8, 1.0, 1.2, 1.5, 1.4, 1.1, 0.9, 0.7, 0.6},
	"Eastern Europe":     {0.5, 0.4, 0.6, 0.7, 0.9, 1.1, 1.4, 1.3, 1.0, 0.8, 0.6, 0.5},
	"North America":      {0.7, 0.6, 0.8, 0.9, 1.0, 1.1, 1.3, 1.2, 1.0, 0.9, 0.8, 0.7},
	"Central America":    {0.8, 0.7, 0.9, 1.0, 1.1, 1.0, 1.2, 1.1, 1.0, 0.9, 0.8, 0.8},
	"Caribbean":          {1.0, 1.0, 1.1, 1.1, 1.2, 1.2, 1.3, 1.3, 1.2, 1.1, 1.0, 1.0},
	"Asia":               {0.8, 0.7, 0.9, 1.0, 1.1, 1.0, 1.2, 1.1, 1.0, 0.9, 0.8, 0.8},
	"Middle East":        {1.0, 0.9, 1.1, 1.0, 0.8, 0.6, 0.5, 0.6, 0.8, 1.0, 1.1, 1.0},
	"Oceania":            {1.2, 1.1, 1.0, 0.9, 0.8, 0.7, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1},
	"Pacific Islands":    {1.1, 1.1, 1.0, 0.9, 0.8, 0.8, 0.9, 1.0, 1.1, 1.1, 1.1, 1.1},
	"Africa":             {0.9, 0.8, 1.0, 1.1, 1.0, 0.9, 0.8, 0.9, 1.0, 1.1, 1.0, 0.9},
	"Sub-Saharan Africa": {0.8, 0.7, 0.9, 1.0, 1.1, 1.0, 0.9, 0.8, 0.9, 1.0, 1.1, 1.0},
	"South America":      {0.8, 0.7, 0.9, 1.0, 1.1, 1.0, 0.9, 0.8, 0.9, 1.0, 1.1, 1.0},
}

// countries is the full destination panel, grouped by region. The order is
// load-bearing: generation iterates it as-is, so reordering changes the
// random draw sequence and therefore the dataset for a given seed.
var countries = []CountryProfile{
	// Europe
	{"France", "Europe", 67390000, 42000, MaturityMature},
	{"Spain", "Europe", 47350000, 30000, MaturityMature},
	{"Italy", "Europe", 60360000, 35000, MaturityMature},
	{"Germany", "Europe", 83190000, 48000, MaturityMature},
	{"United Kingdom", "Europe", 67220000, 45000, MaturityMature},
	{"Netherlands", "Europe", 17130000, 52000, MaturityMature},
	{"Switzerland", "Europe", 8650000, 85000, MaturityMature},
	{"Austria", "Europe", 9006000, 50000, MaturityMature},
	{"Greece", "Europe", 10423000, 20000, MaturityMature},
	{"Portugal", "Europe", 10196000, 25000, MaturityMature},
	{"Poland", "Eastern Europe", 38386000, 18000, MaturityEmerging},
	{"Czech Republic", "Eastern Europe", 10700000, 23000, MaturityEmerging},
	{"Hungary", "Eastern Europe", 9773000, 17000, MaturityEmerging},
	{"Romania", "Eastern Europe", 19240000, 14000, MaturityEmerging},
	{"Croatia", "Eastern Europe", 4105000, 17000, MaturityEmerging},

	// Americas
	{"United States", "North America", 331000000, 65000, MaturityMature},
	{"Canada", "North America", 38000000, 45000, MaturityMature},
	{"Mexico", "North America", 128900000, 10000, MaturityEmerging},
	{"Costa Rica", "Central America", 5094000, 12000, MaturityEmerging},
	{"Panama", "Central America", 4315000, 15000, MaturityEmerging},
	{"Guatemala", "Central America", 17920000, 5000, MaturityEmerging},
	{"Jamaica", "Caribbean", 2961000, 5500, MaturityEmerging},
	{"Dominican Republic", "Caribbean", 10850000, 8000, MaturityEmerging},
	{"Bahamas", "Caribbean", 393000, 32000, MaturityMature},
	{"Cuba", "Caribbean", 11330000, 9000, MaturityEmerging},
	{"Barbados", "Caribbean", 287000, 18000, MaturityMature},

	// Asia
	{"China", "Asia", 1402000000, 12000, MaturityEmerging},
	{"Japan", "Asia", 125800000, 40000, MaturityMature},
	{"South Korea", "Asia", 51270000, 35000, MaturityMature},
	{"Thailand", "Asia", 69800000, 8000, MaturityEmerging},
	{"Singapore", "Asia", 5850000, 65000, MaturityMature},
	{"Malaysia", "Asia", 32700000, 12000, MaturityEmerging},
	{"Vietnam", "Asia", 97340000, 4000, MaturityEmerging},
	{"India", "Asia", 1380000000, 2000, MaturityEmerging},
	{"Indonesia", "Asia", 273500000, 4000, MaturityEmerging},
	{"Philippines", "Asia", 109600000, 3500, MaturityEmerging},
	{"Nepal", "Asia", 29140000, 1200, MaturityEmerging},
	{"Sri Lanka", "Asia", 21800000, 4000, MaturityEmerging},

	// Middle East
	{"United Arab Emirates", "Middle East", 9890000, 43000, MaturityEmerging},
	{"Saudi Arabia", "Middle East", 34800000, 23000, MaturityEmerging},
	{"Qatar", "Middle East", 2880000, 61000, MaturityEmerging},
	{"Turkey", "Middle East", 84340000, 9000, MaturityEmerging},
	{"Israel", "Middle East", 9217000, 43000, MaturityMature},
	{"Jordan", "Middle East", 10200000, 4200, MaturityEmerging},

	// Oceania and Pacific
	{"Australia", "Oceania", 25690000, 55000, MaturityMature},
	{"New Zealand", "Oceania", 5080000, 42000, MaturityMature},
	{"Fiji", "Pacific Islands", 896000, 6000, MaturityEmerging},
	{"Samoa", "Pacific Islands", 198000, 4300, MaturityEmerging},
	{"Papua New Guinea", "Pacific Islands", 8947000, 2500, MaturityEmerging},

	// Africa
	{"South Africa", "Africa", 59310000, 6000, MaturityEmerging},
	{"Morocco", "Africa", 36910000, 3500, MaturityEmerging},
	{"Egypt", "Africa", 102300000, 3000, MaturityEmerging},
	{"Kenya", "Africa", 53770000, 2000, MaturityEmerging},
	{"Nigeria", "Sub-Saharan Africa", 206100000, 2200, MaturityEmerging},
	{"Ethiopia", "Sub-Saharan Africa", 114900000, 900, MaturityEmerging},
	{"Tanzania", "Sub-Saharan Africa", 59730000, 1100, MaturityEmerging},
	{"Ghana", "Sub-Saharan Africa", 31070000, 2200, MaturityEmerging},

	// South America
	{"Brazil", "South America", 212600000, 9000, MaturityEmerging},
	{"Argentina", "South America", 45196000, 10000, MaturityEmerging},
	{"Chile", "South America", 19116000, 15000, MaturityEmerging},
	{"Peru", "South America", 32972000, 7000, MaturityEmerging},
	{"Colombia", "South America", 50880000, 6000, MaturityEmerging},
	{"Ecuador", "South America", 17640000, 6000, MaturityEmerging},
	{"Uruguay", "South America", 3474000, 17000, MaturityEmerging},
	{"Paraguay", "South America", 7132000, 5500, MaturityEmerging},
}

// Countries returns the full destination panel in generation order.
// The returned slice is shared; callers must not mutate it.
func Countries() []CountryProfile {
	return countries
}

// Regions returns the distinct region names, sorted.
func Regions() []string {
	names := make([]string, 0, len(regionalMultipliers))
	for name := range regionalMultipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionalMultiplier returns the arrivals multiplier for a region.
func RegionalMultiplier(region string) (float64, bool) {
	m, ok := regionalMultipliers[region]
	return m, ok
}

// SeasonalCurve returns the twelve monthly multipliers for a region.
func SeasonalCurve(region string) ([12]float64, bool) {
	c, ok := seasonalCurves[region]
	return c, ok
}

// YearFactor returns the macro demand multiplier for a year.
func YearFactor(year int) (float64, bool) {
	f, ok := yearFactors[year]
	return f, ok
}

// Validate checks a profile set against the regional tables. It returns the
// first problem found; a non-nil error means generation must not proceed.
func Validate(profiles []CountryProfile) error {
	if len(profiles) == 0 {
		return fmt.Errorf("reference data: no country profiles")
	}

	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p.Name == "" {
			return fmt.Errorf("reference data: country profile with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("reference data: duplicate country %q", p.Name)
		}
		seen[p.Name] = true

		if p.Population <= 0 {
			return fmt.Errorf("reference data: country %q has non-positive population %d", p.Name, p.Population)
		}
		if p.GDPPerCapita <= 0 {
			return fmt.Errorf("reference data: country %q has non-positive GDP per capita %d", p.Name, p.GDPPerCapita)
		}
		if p.Maturity != MaturityMature && p.Maturity != MaturityEmerging {
			return fmt.Errorf("reference data: country %q has unknown maturity %q", p.Name, p.Maturity)
		}
		if _, ok := regionalMultipliers[p.Region]; !ok {
			return fmt.Errorf("reference data: country %q references unknown region %q in regional multipliers", p.Name, p.Region)
		}
		if _, ok := seasonalCurves[p.Region]; !ok {
			return fmt.Errorf("reference data: country %q references unknown region %q in seasonal curves", p.Name, p.Region)
		}
	}
	return nil
}

// ValidateYears checks that every requested year carries a macro factor.
// Years must be ascending and contiguous so the growth-rate proxy can look
// at the preceding year's factor.
func ValidateYears(years []int) error {
	if len(years) == 0 {
		return fmt.Errorf("reference data: no years requested")
	}
	for i, y := range years {
		if _, ok := yearFactors[y]; !ok {
			return fmt.Errorf("reference data: no year factor for %d", y)
		}
		if i > 0 && y != years[i-1]+1 {
			return fmt.Errorf("reference data: years must be contiguous ascending, got %d after %d", y, years[i-1])
		}
	}
	return nil
}
