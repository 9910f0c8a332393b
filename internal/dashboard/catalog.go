// File: internal/dashboard/catalog.go
package dashboard

import "github.com/AymenS02/united-real-estate/internal/property"

// Governorates offered by the location selector, in display order.
var Governorates = []string{
	"Aden",
	"Lahj",
	"Abyan",
	"Shabwah",
	"Al-Dhalea",
	"Hadhramaut",
	"Al-Mahra",
	"Socotra",
	property.OtherValue,
}

var governorateDistricts = map[string][]string{
	"Aden": {
		"Sirah", "Khormaksar", "Al-Mualla", "Al-Tawahi", "Sheikh Othman",
		"Al-Mansoura", "Dar Saad", "Al-Buraiqa", property.OtherValue,
	},
	"Lahj": {
		"Al-Hadd", "Al-Houta", "Al-Qubaytah", "Al-Musaymir", "Al-Mudarabah and Al-Arah",
		"Al-Muflahi", "Al-Maqatirah", "Al-Malah", "Tuban", "Halmin", "Jubail Jabr",
		"Radfan", "Tur Al-Bahah", "Yafa", "Yahr", property.OtherValue,
	},
	"Abyan": {
		"Zinjibar", "Al-Mahfad", "Mudiyah", "Jayshan", "Lawdar", "Sibah",
		"Rasad", "Sarar", "Ahwar", "Khanfar", "Al-Wadiah", property.OtherValue,
	},
}

// DistrictsFor returns the districts selectable under governorate. Governorates
// without a catalog entry only offer "Other"; no governorate offers nothing.
func DistrictsFor(governorate string) []string {
	if governorate == "" {
		return []string{}
	}
	districts, ok := governorateDistricts[governorate]
	if !ok {
		return []string{property.OtherValue}
	}
	out := make([]string, len(districts))
	copy(out, districts)
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
