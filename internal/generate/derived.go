package generate

import "github.com/leapstack-labs/touriq/internal/dataset"

// The derived tables consume the base arrivals table row by row, in the
// order the base table was generated, so the random sequence stays aligned
// across runs.

// HotelBookings derives the hotel bookings table from the base table.
func (g *Generator) HotelBookings(base []dataset.ArrivalRecord) []dataset.HotelRecord {
	records := make([]dataset.HotelRecord, 0, len(base))

	for _, r := range base {
		bookingRate := g.uniform(0.6, 0.9)
		bookings := int64(float64(r.Arrivals) * bookingRate)

		baseADR := float64(r.GDPPerCapita) * 0.1
		switch r.Maturity {
		case "mature":
			baseADR *= 1.2
		case "emerging":
			baseADR *= 0.8
		}

		var adr float64
		if peakMonth(r.Month) {
			adr = baseADR * g.uniform(1.3, 1.8)
		} else {
			adr = baseADR * g.uniform(0.7, 1.2)
		}

		occupancy := g.uniform(0.4, 0.95)
		revenue := float64(bookings) * adr * occupancy

		records = append(records, dataset.HotelRecord{
			Country:       r.Country,
			CountryCode:   r.CountryCode,
			Region:        r.Region,
			Year:          r.Year,
			Month:         r.Month,
			Bookings:      bookings,
			DailyRate:     round(adr, 2),
			OccupancyRate: round(occupancy, 3),
			Revenue:       round(revenue, 2),
			Maturity:      r.Maturity,
		})
	}

	g.logger.Debug("generated hotel bookings table", "records", len(records))
	return records
}

// FlightData derives the flight data table from the base table.
func (g *Generator) FlightData(base []dataset.ArrivalRecord) []dataset.FlightRecord {
	records := make([]dataset.FlightRecord, 0, len(base))

	for _, r := range base {
		capacity := int64(float64(r.Arrivals) * g.uniform(1.2, 1.8))
		loadFactor := g.uniform(0.6, 0.95)
		passengers := int64(float64(capacity) * loadFactor)

		// Ticket prices skew with typical route distance per region.
		basePrice := float64(r.GDPPerCapita) * 0.05
		switch r.Region {
		case "Europe":
			basePrice *= 0.8
		case "Asia", "Oceania":
			basePrice *= 1.5
		}

		var price float64
		if peakMonth(r.Month) {
			price = basePrice * g.uniform(1.2, 1.6)
		} else {
			price = basePrice * g.uniform(0.8, 1.1)
		}

		revenue := float64(passengers) * price

		records = append(records, dataset.FlightRecord{
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Region:      r.Region,
			Year:        r.Year,
			Month:       r.Month,
			Capacity:    capacity,
			Passengers:  passengers,
			LoadFactor:  round(loadFactor, 3),
			TicketPrice: round(price, 2),
			Revenue:     round(revenue, 2),
			Maturity:    r.Maturity,
		})
	}

	g.logger.Debug("generated flight data table", "records", len(records))
	return records
}

// Revenue derives the tourism revenue table from the base table.
func (g *Generator) Revenue(base []dataset.ArrivalRecord) []dataset.RevenueRecord {
	records := make([]dataset.RevenueRecord, 0, len(base))

	for _, r := range base {
		perTouristBase := float64(r.GDPPerCapita) * 0.3
		switch r.Maturity {
		case "mature":
			perTouristBase *= 1.3
		case "emerging":
			perTouristBase *= 0.7
		}

		var perTourist float64
		if peakMonth(r.Month) {
			perTourist = perTouristBase * g.uniform(1.2, 1.5)
		} else {
			perTourist = perTouristBase * g.uniform(0.8, 1.1)
		}

		total := float64(r.Arrivals) * perTourist

		records = append(records, dataset.RevenueRecord{
			Country:        r.Country,
			CountryCode:    r.CountryCode,
			Region:         r.Region,
			Year:           r.Year,
			Month:          r.Month,
			Total:          round(total, 2),
			Accommodation:  round(total*g.uniform(0.3, 0.5), 2),
			Transportation: round(total*g.uniform(0.2, 0.3), 2),
			FoodBeverage:   round(total*g.uniform(0.15, 0.25), 2),
			Activities:     round(total*g.uniform(0.1, 0.2), 2),
			PerTourist:     round(perTourist, 2),
			Maturity:       r.Maturity,
		})
	}

	g.logger.Debug("generated revenue table", "records", len(records))
	return records
}
