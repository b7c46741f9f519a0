// Package services implements the two pipelines behind the command line
// tools.
//
// CompletionService turns the raw ranking sheet into the completed sheet and
// returns the run summary. CountryExportService publishes a completed sheet
// per country. Both open one span per run, record run metrics and log
// through an injected *slog.Logger tagged with the run's trace ID.
//
// Failures are returned once, as *errors.AppError values (or wrapped service
// sentinels); the commands turn them into an exit status.
package services
