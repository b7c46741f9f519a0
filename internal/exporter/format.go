package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"rankcli/internal/config"
	"rankcli/pkg/contracts/domain"
)

// invalidSheetChars are the characters Excel rejects in sheet names
const invalidSheetChars = `:\/?*[]`

// sheetName turns a country into a valid worksheet name: forbidden
// characters become spaces and the result is cut to Excel's length limit
func sheetName(country string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return ' '
		}
		return r
	}, country)
	name = strings.Trim(strings.TrimSpace(name), "'")
	if name == "" {
		name = config.UnknownCountry
	}
	return truncateRunes(name, config.MaxSheetNameLength)
}

// uniqueSheetName returns sheetName(country), suffixed when the name is
// already taken. Excel compares sheet names case-insensitively.
func uniqueSheetName(country string, taken map[string]bool) string {
	base := sheetName(country)
	name := base
	for i := 2; taken[strings.ToLower(name)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		name = truncateRunes(base, config.MaxSheetNameLength-len(suffix)) + suffix
	}
	taken[strings.ToLower(name)] = true
	return name
}

// uniqueFileName returns domain.CountryFileName(country), suffixed with _2,
// _3, ... when another country already maps to the same file. Names are
// compared case-insensitively so the result is safe on any filesystem.
func uniqueFileName(country string, taken map[string]bool) string {
	name := domain.CountryFileName(country)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	for i := 2; taken[strings.ToLower(name)]; i++ {
		name = fmt.Sprintf("%s_%d.json", stem, i)
	}
	taken[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
