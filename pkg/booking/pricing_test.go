package booking

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	loader, err := NewLoader("")
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	return loader.Catalog()
}

func TestHotelPrice(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name     string
		location string
		nights   int
		roomType string
		want     int
	}{
		// "chicago" digests to 39, king ranks 1: 3 x (100 + 39 + 100 + 1).
		{name: "chicago king", location: "Chicago", nights: 3, roomType: "King", want: 720},
		{name: "chicago queen", location: "chicago", nights: 1, roomType: "queen", want: 239},
		{name: "chicago deluxe", location: "chicago", nights: 1, roomType: "deluxe", want: 241},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.HotelPrice(tt.location, tt.nights, tt.roomType); got != tt.want {
				t.Errorf("HotelPrice = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHotelPriceDeterministic(t *testing.T) {
	cat := testCatalog(t)
	first := cat.HotelPrice("seattle", 7, "deluxe")
	for range 5 {
		if got := cat.HotelPrice("seattle", 7, "deluxe"); got != first {
			t.Fatalf("HotelPrice varied: %d then %d", first, got)
		}
	}
}

func TestCarPrice(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name     string
		location string
		days     int
		age      int
		carType  string
		want     float64
	}{
		// "chicago" digests to 39, luxury ranks 5: 2 x (139 + 250).
		{name: "luxury adult", location: "chicago", days: 2, age: 30, carType: "luxury", want: 778},
		// Drivers under 25 pay 1.10 on the class component: 2 x (139 + 275).
		{name: "luxury young driver", location: "chicago", days: 2, age: 22, carType: "luxury", want: 828},
		{name: "economy adult", location: "chicago", days: 2, age: 30, carType: "economy", want: 278},
		// Rank 0 means the under-25 multiplier has nothing to scale.
		{name: "economy young driver", location: "chicago", days: 2, age: 22, carType: "economy", want: 278},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.CarPrice(tt.location, tt.days, tt.age, tt.carType)
			if got != tt.want {
				t.Errorf("CarPrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCarPriceUnrankedTypesPriceAsEconomy(t *testing.T) {
	cat := testCatalog(t)
	economy := cat.CarPrice("boston", 3, 40, "economy")

	for _, carType := range []string{"economico", "mediano", "lujo", "hovercraft"} {
		if got := cat.CarPrice("boston", 3, 40, carType); got != economy {
			t.Errorf("CarPrice(%q) = %v, want economy price %v", carType, got, economy)
		}
	}
}
