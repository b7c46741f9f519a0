// Package dataprocessing completes the university ranking sheet.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Parser: reads the ranking CSV into an ordered Table of Records
// 2. Ranking: turns a ranking cell ("42", "1201-1400") into a numeric rank
// 3. Processor: fills placeholder scores from the rank and stamps the academic period
// 4. Summarizer: counts rows with and without a score
//
// # Usage
//
//	table, err := dataprocessing.ParseCSVFile("assets/Ranking - Sheet1.csv")
//	if err != nil {
//	    return err
//	}
//	processor := dataprocessing.NewScoreFillProcessor(dataprocessing.DefaultAcademicPeriod())
//	completed := processor.FillMissingData(table)
//	summary := dataprocessing.Summarize(completed.Records)
//
// # Data Flow
//
//	CSV File → Parser → Table → Processor → Completed Table → Summarizer → Summary
//
// # Error Handling
//
// Only the parser returns errors. Per-row logic is total: a ranking that
// cannot be parsed leaves the score as the "-" placeholder.
package dataprocessing
