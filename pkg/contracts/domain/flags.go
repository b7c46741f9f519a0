package domain

// DefaultFlag is shown for countries without a known flag
const DefaultFlag = "🏳️"

var countryFlags = map[string]string{
	"United States":    "🇺🇸",
	"United Kingdom":   "🇬🇧",
	"China (Mainland)": "🇨🇳",
	"Japan":            "🇯🇵",
	"Germany":          "🇩🇪",
	"France":           "🇫🇷",
	"Canada":           "🇨🇦",
	"Australia":        "🇦🇺",
	"Netherlands":      "🇳🇱",
	"Switzerland":      "🇨🇭",
	"Sweden":           "🇸🇪",
	"Italy":            "🇮🇹",
	"South Korea":      "🇰🇷",
	"Hong Kong SAR":    "🇭🇰",
	"Singapore":        "🇸🇬",
	"Belgium":          "🇧🇪",
	"Denmark":          "🇩🇰",
	"Finland":          "🇫🇮",
	"Norway":           "🇳🇴",
	"Austria":          "🇦🇹",
	"Spain":            "🇪🇸",
	"Ireland":          "🇮🇪",
	"Brazil":           "🇧🇷",
	"Argentina":        "🇦🇷",
	"Chile":            "🇨🇱",
	"Mexico":           "🇲🇽",
	"Russia":           "🇷🇺",
	"India":            "🇮🇳",
	"Malaysia":         "🇲🇾",
	"Taiwan":           "🇹🇼",
	"New Zealand":      "🇳🇿",
	"South Africa":     "🇿🇦",
	"Qatar":            "🇶🇦",
	"Saudi Arabia":     "🇸🇦",
}

// CountryFlag returns the flag emoji for a country name as it appears in
// the ranking sheet, or DefaultFlag
func CountryFlag(country string) string {
	if flag, ok := countryFlags[country]; ok {
		return flag
	}
	return DefaultFlag
}
