// Package exporter writes completed ranking sheets.
//
// CSVWriter writes the completed sheet itself. The country exporters regroup
// a completed sheet by its Country column: CountryExporter writes one JSON
// file per country plus summary.json, and WorkbookExporter writes the same
// grouping as an xlsx workbook with a Summary sheet and one sheet per country.
//
// Every file is written through files.Manager.WriteFileAtomic, so an
// interrupted export leaves the previous file in place.
//
// Example usage:
//
//	export := exporter.GroupByCountry(table.Records)
//	n, err := exporter.NewCountryExporter(manager, config.ExportWorkers, logger).
//	    ExportJSON(ctx, paths.CountryDataDir, export)
package exporter
