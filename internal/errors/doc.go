// Package errors defines the typed error taxonomy shared by the ranking tools.
//
// Per-row problems (an unparsable ranking, a missing score) never become
// errors; they degrade to the score placeholder. Only whole-run failures are
// reported, each as an *AppError whose Type tells the caller what went wrong:
//
//	IO          the input could not be opened or the output could not be written
//	PARSING     the input is not well-formed CSV
//	SCHEMA      the input lacks a required column
//	CONFIG      the ambient configuration is invalid
//
// AppError implements Unwrap, so errors.Is and errors.As see the cause.
package errors
