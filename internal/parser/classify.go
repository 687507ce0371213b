package parser

import (
	"regexp"
	"strings"
)

// mapping binds an uppercase keyword to a country/region pair. The tables
// below are ordered slices, not maps: classification is first-match-wins by
// substring containment, so definition order is the tie-break.
type mapping struct {
	keyword string
	country string
	region  string
}

// specialCases override the country table for cross-cutting entries such as
// poles, multi-country seas and city lists.
var specialCases = []mapping{
	{"GEOGRAPHICAL NORTH POLE", "Arctic", "North Pole"},
	{"BOTH POLES", "Multiple", "Global"},
	{"WORLDWIDE", "Multiple", "Global"},
	{"ALL OVER", "Multiple", "Multiple"},
	{"ACROSS", "Multiple", "Multiple"},
	{"NEW YORK, TOKYO", "Multiple", "Global Cities"},
	{"LONDON, NEW YORK, TOKYO", "Multiple", "Global Cities"},
	{"NEW YORK, PARIS, OR LONDON", "Multiple", "Global Cities"},
	{"RED SEA", "Multiple", "Red Sea"},
	{"CASPIAN SEA", "Multiple", "Caspian Region"},
	{"EMPTY QUARTER", "Saudi Arabia", "Middle East"},
	{"SAHARA DESERT", "Multiple", "Sahara Desert"},
	{"TIERRA DEL FUEGO", "Multiple", "South America"},
	{"PATAGONIA", "Multiple", "South America"},
	{"FRENCH RIVIERA", "France", "Western Europe"},
}

// countryMapping covers sovereign states, dependent territories and a few
// geographic aliases that appear in the guide.
var countryMapping = []mapping{
	// Europe
	{"NORWAY", "Norway", "Scandinavia"},
	{"SWEDEN", "Sweden", "Scandinavia"},
	{"FINLAND", "Finland", "Scandinavia"},
	{"DENMARK", "Denmark", "Scandinavia"},
	{"ICELAND", "Iceland", "Nordic"},
	{"ESTONIA", "Estonia", "Baltic States"},
	{"LATVIA", "Latvia", "Baltic States"},
	{"LITHUANIA", "Lithuania", "Baltic States"},
	{"UK", "United Kingdom", "British Isles"},
	{"ENGLAND", "United Kingdom", "British Isles"},
	{"SCOTLAND", "United Kingdom", "British Isles"},
	{"WALES", "United Kingdom", "British Isles"},
	{"NORTHERN IRELAND", "United Kingdom", "British Isles"},
	{"IRELAND", "Ireland", "British Isles"},
	{"FRANCE", "France", "Western Europe"},
	{"NETHERLANDS", "Netherlands", "Western Europe"},
	{"BELGIUM", "Belgium", "Western Europe"},
	{"GERMANY", "Germany", "Central Europe"},
	{"SWITZERLAND", "Switzerland", "Central Europe"},
	{"AUSTRIA", "Austria", "Central Europe"},
	{"CZECH", "Czech Republic", "Central Europe"},
	{"SLOVAKIA", "Slovakia", "Central Europe"},
	{"HUNGARY", "Hungary", "Central Europe"},
	{"POLAND", "Poland", "Eastern Europe"},
	{"RUSSIA", "Russia", "Russia"},
	{"UKRAINE", "Ukraine", "Eastern Europe"},
	{"ROMANIA", "Romania", "Eastern Europe"},
	{"BULGARIA", "Bulgaria", "Eastern Europe"},
	{"ITALY", "Italy", "Southern Europe"},
	{"SPAIN", "Spain", "Southern Europe"},
	{"PORTUGAL", "Portugal", "Southern Europe"},
	{"GREECE", "Greece", "Southern Europe"},
	{"CROATIA", "Croatia", "Southern Europe"},
	{"SLOVENIA", "Slovenia", "Southern Europe"},
	{"MONACO", "Monaco", "Western Europe"},
	// Americas
	{"CANADA", "Canada", "North America"},
	{"US", "United States", "North America"},
	{"USA", "United States", "North America"},
	{"ALASKA", "United States", "Alaska"},
	{"HAWAII", "United States", "Pacific"},
	{"GREENLAND", "Greenland", "Arctic"},
	{"MEXICO", "Mexico", "North America"},
	{"PUERTO RICO", "Puerto Rico", "Caribbean"},
	{"GUATEMALA", "Guatemala", "Central America"},
	{"BELIZE", "Belize", "Central America"},
	{"HONDURAS", "Honduras", "Central America"},
	{"NICARAGUA", "Nicaragua", "Central America"},
	{"COSTA RICA", "Costa Rica", "Central America"},
	{"PANAMA", "Panama", "Central America"},
	{"CUBA", "Cuba", "Caribbean"},
	{"JAMAICA", "Jamaica", "Caribbean"},
	{"BAHAMAS", "Bahamas", "Caribbean"},
	{"CAYMAN ISLANDS", "Cayman Islands", "Caribbean"},
	{"COLOMBIA", "Colombia", "South America"},
	{"VENEZUELA", "Venezuela", "South America"},
	{"GUYANA", "Guyana", "South America"},
	{"BRAZIL", "Brazil", "South America"},
	{"ECUADOR", "Ecuador", "South America"},
	{"PERU", "Peru", "South America"},
	{"BOLIVIA", "Bolivia", "South America"},
	{"CHILE", "Chile", "South America"},
	{"ARGENTINA", "Argentina", "South America"},
	// Asia
	{"CHINA", "China", "East Asia"},
	{"JAPAN", "Japan", "East Asia"},
	{"SOUTH KOREA", "South Korea", "East Asia"},
	{"KOREA", "South Korea", "East Asia"},
	{"MONGOLIA", "Mongolia", "Central Asia"},
	{"KAZAKHSTAN", "Kazakhstan", "Central Asia"},
	{"KYRGYZSTAN", "Kyrgyzstan", "Central Asia"},
	{"TAJIKISTAN", "Tajikistan", "Central Asia"},
	{"UZBEKISTAN", "Uzbekistan", "Central Asia"},
	{"TURKMENISTAN", "Turkmenistan", "Central Asia"},
	{"INDIA", "India", "South Asia"},
	{"NEPAL", "Nepal", "South Asia"},
	{"BHUTAN", "Bhutan", "South Asia"},
	{"BANGLADESH", "Bangladesh", "South Asia"},
	{"SRI LANKA", "Sri Lanka", "South Asia"},
	{"THAILAND", "Thailand", "Southeast Asia"},
	{"VIETNAM", "Vietnam", "Southeast Asia"},
	{"CAMBODIA", "Cambodia", "Southeast Asia"},
	{"LAOS", "Laos", "Southeast Asia"},
	{"MYANMAR", "Myanmar", "Southeast Asia"},
	{"MALAYSIA", "Malaysia", "Southeast Asia"},
	{"SINGAPORE", "Singapore", "Southeast Asia"},
	{"INDONESIA", "Indonesia", "Southeast Asia"},
	{"BRUNEI", "Brunei", "Southeast Asia"},
	{"PHILIPPINES", "Philippines", "Southeast Asia"},
	// Middle East
	{"TURKEY", "Turkey", "Middle East"},
	{"IRAN", "Iran", "Middle East"},
	{"IRAQ", "Iraq", "Middle East"},
	{"ISRAEL", "Israel", "Middle East"},
	{"PALESTINE", "Palestine", "Middle East"},
	{"LEBANON", "Lebanon", "Middle East"},
	{"JORDAN", "Jordan", "Middle East"},
	{"SAUDI ARABIA", "Saudi Arabia", "Middle East"},
	{"UAE", "United Arab Emirates", "Middle East"},
	{"OMAN", "Oman", "Middle East"},
	{"YEMEN", "Yemen", "Middle East"},
	{"BAHRAIN", "Bahrain", "Middle East"},
	{"AZERBAIJAN", "Azerbaijan", "Caucasus"},
	// Africa
	{"MOROCCO", "Morocco", "North Africa"},
	{"ALGERIA", "Algeria", "North Africa"},
	{"TUNISIA", "Tunisia", "North Africa"},
	{"EGYPT", "Egypt", "North Africa"},
	{"SENEGAL", "Senegal", "West Africa"},
	{"MALI", "Mali", "West Africa"},
	{"BURKINA FASO", "Burkina Faso", "West Africa"},
	{"NIGERIA", "Nigeria", "West Africa"},
	{"ETHIOPIA", "Ethiopia", "East Africa"},
	{"KENYA", "Kenya", "East Africa"},
	{"TANZANIA", "Tanzania", "East Africa"},
	{"CONGO", "Democratic Republic of Congo", "Central Africa"},
	{"ANGOLA", "Angola", "Central Africa"},
	{"EQUATORIAL GUINEA", "Equatorial Guinea", "Central Africa"},
	{"SOUTH AFRICA", "South Africa", "Southern Africa"},
	{"NAMIBIA", "Namibia", "Southern Africa"},
	{"BOTSWANA", "Botswana", "Southern Africa"},
	{"ZAMBIA", "Zambia", "Southern Africa"},
	{"MALAWI", "Malawi", "Southern Africa"},
	{"MADAGASCAR", "Madagascar", "Indian Ocean"},
	// Oceania
	{"AUSTRALIA", "Australia", "Oceania"},
	{"NEW ZEALAND", "New Zealand", "Oceania"},
	{"FIJI", "Fiji", "Pacific Islands"},
	{"SAMOA", "Samoa", "Pacific Islands"},
	{"COOK ISLANDS", "Cook Islands", "Pacific Islands"},
	{"FRENCH POLYNESIA", "French Polynesia", "Pacific Islands"},
	{"MICRONESIA", "Micronesia", "Pacific Islands"},
	{"PAPUA NEW GUINEA", "Papua New Guinea", "Oceania"},
	{"MALDIVES", "Maldives", "Indian Ocean"},
	{"MAURITIUS", "Mauritius", "Indian Ocean"},
	// Special regions
	{"ANTARCTICA", "Antarctica", "Antarctica"},
	{"ARCTIC", "Arctic", "Arctic"},
	{"GALAPAGOS", "Ecuador", "South America"},
	{"BALEARIC", "Spain", "Southern Europe"},
	{"CANARY", "Spain", "Atlantic Islands"},
}

// terrainPattern maps a terrain/feature word class to a generic region.
type terrainPattern struct {
	re      *regexp.Regexp
	country string
	region  string
}

var terrainPatterns = []terrainPattern{
	{regexp.MustCompile(`\b(ISLAND|ISLANDS|ARCHIPELAGO)\b`), "Multiple", "Islands"},
	{regexp.MustCompile(`\b(DESERT|SEA|OCEAN|BAY|GULF)\b`), "Multiple", "Maritime Region"},
	{regexp.MustCompile(`\b(MOUNTAINS?|ALPS|HIMALAYAS?)\b`), "Multiple", "Mountain Region"},
	{regexp.MustCompile(`\b(RIVER|LAKE|FALLS)\b`), "Multiple", "Water Feature"},
	{regexp.MustCompile(`\b(NATIONAL PARK|RESERVE|PARK)\b`), "Multiple", "Protected Area"},
}

var adminUnitRe = regexp.MustCompile(`\b(PROVINCE|REGION|STATE|TERRITORY|GOVERNORATE)\b`)

// Classify maps a free-text location to a (country, region) pair. It never
// fails: locations nothing matches come back as ("Unknown", "Unknown").
//
// Tiers, first match wins: special cases, country keywords, terrain patterns,
// the last comma segment retried against the country keywords, and a generic
// multi-location check.
func Classify(location string) (country, region string) {
	upper := strings.ToUpper(strings.TrimSpace(location))

	for _, m := range specialCases {
		if strings.Contains(upper, m.keyword) {
			return m.country, m.region
		}
	}

	for _, m := range countryMapping {
		if strings.Contains(upper, m.keyword) {
			return m.country, m.region
		}
	}

	for _, p := range terrainPatterns {
		if p.re.MatchString(upper) {
			return p.country, p.region
		}
	}

	if strings.Contains(upper, ",") {
		parts := strings.Split(upper, ",")
		segment := strings.TrimSpace(parts[len(parts)-1])
		segment = strings.TrimSpace(adminUnitRe.ReplaceAllString(segment, ""))

		for _, m := range countryMapping {
			if strings.Contains(segment, m.keyword) {
				return m.country, m.region
			}
		}
	}

	for _, word := range []string{"MULTIPLE", "VARIOUS", "WORLDWIDE"} {
		if strings.Contains(upper, word) {
			return "Multiple", "Multiple"
		}
	}

	return "Unknown", "Unknown"
}
