package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// University is one row of the completed ranking sheet as published in the
// per-country JSON files.
//
// Usage:
//
//	u := University{
//	    ID:      "Japan_1",
//	    Rank:    28,
//	    Ranking: "28",
//	    Name:    "The University of Tokyo",
//	    Country: "Japan",
//	    Score:   83.4,
//	}
type University struct {
	// ID is "<country>_<n>" where n is the 1-based position of the row
	// within its country in sheet order (before sorting)
	ID string `json:"id" validate:"required"`

	// Rank is the leading integer of the Rank column, 0 when there is none
	Rank int `json:"rank" validate:"min=0"`

	// Ranking is the raw Ranking cell, e.g. "12" or "1201-1400"
	Ranking string `json:"ranking"`

	Name    string `json:"name"`
	Code    string `json:"code"`
	Country string `json:"country" validate:"required"`

	// Score is the leading number of the Score cell, 0 when there is none
	Score float64 `json:"score"`

	Region    string `json:"region"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CountryData is the content of one per-country JSON file.
// Universities are ordered by Rank ascending.
type CountryData struct {
	Country           string       `json:"country" validate:"required"`
	TotalUniversities int          `json:"totalUniversities" validate:"min=0"`
	Universities      []University `json:"universities" validate:"dive"`
}

// CountryEntry describes one country in the summary file
type CountryEntry struct {
	Name     string `json:"name" validate:"required"`
	Count    int    `json:"count" validate:"min=1"`
	FileName string `json:"fileName" validate:"required,endswith=.json"`
	Flag     string `json:"flag"`
}

// CountrySummary is the content of summary.json.
// Countries are ordered by Count descending, then by name.
type CountrySummary struct {
	TotalCountries    int            `json:"totalCountries" validate:"min=0"`
	TotalUniversities int            `json:"totalUniversities" validate:"min=0"`
	Countries         []CountryEntry `json:"countries" validate:"unique=FileName,dive"`
}

var (
	fileNameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]`)
	validate       = validator.New()
)

// NewCountryData builds the file content for a country
func NewCountryData(country string, universities []University) *CountryData {
	return &CountryData{
		Country:           country,
		TotalUniversities: len(universities),
		Universities:      universities,
	}
}

// Validate checks the struct tags of the country data and its universities
func (c *CountryData) Validate() error {
	if c == nil {
		return fmt.Errorf("country data cannot be nil")
	}
	if c.TotalUniversities != len(c.Universities) {
		return fmt.Errorf("country %q lists %d universities but totalUniversities is %d",
			c.Country, len(c.Universities), c.TotalUniversities)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid country data for %q: %w", c.Country, err)
	}
	return nil
}

// Validate checks the struct tags of the summary and its entries
func (s *CountrySummary) Validate() error {
	if s == nil {
		return fmt.Errorf("country summary cannot be nil")
	}
	if s.TotalCountries != len(s.Countries) {
		return fmt.Errorf("summary lists %d countries but totalCountries is %d", len(s.Countries), s.TotalCountries)
	}
	return validate.Struct(s)
}

// CountryFileName returns the JSON file name for a country: every character
// that is not an ASCII letter or digit becomes an underscore.
//
// Example:
//
//	CountryFileName("China (Mainland)") // "China__Mainland_.json"
func CountryFileName(country string) string {
	return fileNameUnsafe.ReplaceAllString(country, "_") + ".json"
}

// LeadingInt parses the integer prefix of s after leading whitespace, the
// way a lenient spreadsheet import would. It returns 0 when s has no
// integer prefix.
func LeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// LeadingFloat parses the decimal prefix of s after leading whitespace.
// It returns 0 when s has no numeric prefix, so "-" and "" yield 0.
func LeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	mantissa := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		mantissa++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}
	// optional exponent, only taken when it has digits
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
