// Package domain holds the JSON contracts published by the country export:
// one CountryData file per country and a CountrySummary index.
package domain
