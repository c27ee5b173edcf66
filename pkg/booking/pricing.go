package booking

import "strings"

// locationDigest sums the lowercased character codes of the location,
// offset by 'a', so the mock price is fixed for a given city. Non-letter
// characters contribute negative offsets; that is part of the formula, not
// sanitized away.
func locationDigest(location string) int {
	sum := 0
	for _, r := range strings.ToLower(location) {
		sum += int(r) - 'a'
	}
	return sum
}

// HotelPrice computes the deterministic mock price of a hotel stay:
// nights x (100 + location digest + 100 + room-type rank).
func (c *Catalog) HotelPrice(location string, nights int, roomType string) int {
	return nights * (100 + locationDigest(location) + 100 + c.RoomTypeRank(roomType))
}

// CarPrice computes the deterministic mock price of a car rental:
// days x (100 + location digest + rank x 50 x age multiplier), where
// drivers under 25 pay a 1.10 multiplier on the class component. Car types
// without a pricing rank, including the Spanish synonyms, price as economy.
func (c *Catalog) CarPrice(location string, days, age int, carType string) float64 {
	ageMultiplier := 1.0
	if age < 25 {
		ageMultiplier = 1.10
	}
	rank := c.CarClassRank(carType)
	return float64(days) * (float64(100+locationDigest(location)) + float64(rank*50)*ageMultiplier)
}
