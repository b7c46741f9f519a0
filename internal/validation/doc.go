// Package validation checks the files and headers the ranking tools work on
// before any data is read or written. Failures are returned as typed
// application errors (IO, VALIDATION or SCHEMA).
package validation
