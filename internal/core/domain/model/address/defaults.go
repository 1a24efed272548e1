package address

import "restopos/internal/core/domain/model/kernel"

// defaultStreets is the delivery area seeded on first startup.
var defaultStreets = []string{
	"Ady Endre utca",
	"Akácfa utca",
	"Alkotmány körút",
	"Álmos utca",
	"Aradi utca",
	"Arató utca",
	"Árpád utca",
	"Attila utca",
	"Béke utca",
	"Bod Árpád utca",
	"Bodza utca",
	"Borostyán utca",
	"Brassói utca",
	"Cinke utca",
	"Citera utca",
	"Csongrádi utca",
	"Csuka utca",
	"Dalos utca",
	"Dóci utca",
}

// Defaults returns the seedable address list of the default delivery area.
func Defaults() []*Address {
	addresses := make([]*Address, 0, len(defaultStreets))
	for _, street := range defaultStreets {
		a, err := NewAddress(kernel.NewDocID("address"), street, "", "Sándorfalva", "6762")
		if err != nil {
			continue
		}
		addresses = append(addresses, a)
	}
	return addresses
}
