package service

import "strings"

// countryNames maps ISO 3166-1 alpha-2 codes to display names for the markets
// the platform ships to
var countryNames = map[string]string{
	"AE": "united arab emirates",
	"AT": "austria",
	"AU": "australia",
	"BE": "belgium",
	"BH": "bahrain",
	"BR": "brazil",
	"CA": "canada",
	"CH": "switzerland",
	"CN": "china",
	"DE": "germany",
	"DK": "denmark",
	"EG": "egypt",
	"ES": "spain",
	"FI": "finland",
	"FR": "france",
	"GB": "united kingdom",
	"IE": "ireland",
	"IN": "india",
	"IT": "italy",
	"JO": "jordan",
	"JP": "japan",
	"KW": "kuwait",
	"LB": "lebanon",
	"MX": "mexico",
	"NL": "netherlands",
	"NO": "norway",
	"NZ": "new zealand",
	"OM": "oman",
	"PL": "poland",
	"PT": "portugal",
	"QA": "qatar",
	"SA": "saudi arabia",
	"SE": "sweden",
	"SG": "singapore",
	"TR": "turkey",
	"US": "united states",
	"ZA": "south africa",
}

// countryByCode resolves a country code to its title-cased display name. An
// unknown code resolves to the code itself.
func countryByCode(code string) string {
	name, ok := countryNames[strings.ToUpper(code)]
	if !ok {
		return code
	}
	return titleWords(name)
}

// titleWords upper-cases the first letter of every space-separated word
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
