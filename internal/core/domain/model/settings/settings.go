// Package settings contains the restaurant profile document, stored under a
// single well-known key.
package settings

// DocumentKey is the well-known key of the settings document.
const DocumentKey = "settings"

// OpeningHours is the open/close pair of one weekday.
type OpeningHours struct {
	Open  string
	Close string
}

// PizzaSize is one configurable pizza size with its price multiplier.
type PizzaSize struct {
	ID              string
	Name            string
	PriceMultiplier float64
}

// Topping is one configurable extra topping.
type Topping struct {
	ID    string
	Name  string
	Price int
}

// Settings is the restaurant profile: contact data, fees, opening hours,
// payment methods, and the pizza sizing/topping configuration.
type Settings struct {
	Rev                 string
	RestaurantName      string
	Address             string
	Phone               string
	Email               string
	TaxNumber           string
	DeliveryFee         int
	PackagingFee        int
	MinOrderAmount      int
	DeliveryTimeMinutes int
	OpeningHours        map[string]OpeningHours
	PaymentMethods      []string
	PizzaSizes          []PizzaSize
	ExtraToppings       []Topping
}

// Default returns the settings document seeded on first startup.
func Default() *Settings {
	return &Settings{
		RestaurantName:      "Pizza Maestro",
		Address:             "1234 Budapest, Példa utca 1.",
		Phone:               "+36-1-234-5678",
		Email:               "info@pizzamaestro.hu",
		TaxNumber:           "12345678-2-42",
		DeliveryFee:         500,
		PackagingFee:        200,
		MinOrderAmount:      2000,
		DeliveryTimeMinutes: 60,
		OpeningHours: map[string]OpeningHours{
			"monday":    {Open: "10:00", Close: "22:00"},
			"tuesday":   {Open: "10:00", Close: "22:00"},
			"wednesday": {Open: "10:00", Close: "22:00"},
			"thursday":  {Open: "10:00", Close: "22:00"},
			"friday":    {Open: "10:00", Close: "23:00"},
			"saturday":  {Open: "11:00", Close: "23:00"},
			"sunday":    {Open: "11:00", Close: "22:00"},
		},
		PaymentMethods: []string{"cash", "card"},
		PizzaSizes: []PizzaSize{
			{ID: "small", Name: "Kicsi (25 cm)", PriceMultiplier: 1},
			{ID: "medium", Name: "Közepes (32 cm)", PriceMultiplier: 1.4},
			{ID: "large", Name: "Nagy (45 cm)", PriceMultiplier: 1.8},
			{ID: "family", Name: "Családi (50 cm)", PriceMultiplier: 2.2},
		},
		ExtraToppings: []Topping{
			{ID: "cheese", Name: "Extra sajt", Price: 300},
			{ID: "ham", Name: "Sonka", Price: 350},
			{ID: "mushroom", Name: "Gomba", Price: 250},
			{ID: "corn", Name: "Kukorica", Price: 200},
			{ID: "bacon", Name: "Bacon", Price: 400},
			{ID: "onion", Name: "Hagyma", Price: 150},
			{ID: "salami", Name: "Szalámi", Price: 400},
			{ID: "pineapple", Name: "Ananász", Price: 300},
		},
	}
}
