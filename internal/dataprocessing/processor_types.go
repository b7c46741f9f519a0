package dataprocessing

import "rankcli/internal/config"

// Processor defines the interface for ranking sheet transformations
type Processor interface {
	// FillMissingData takes a parsed sheet and returns the completed sheet
	FillMissingData(table *Table) *Table
}

// AcademicPeriod is the pair of date literals stamped onto every row
type AcademicPeriod struct {
	Start string
	End   string
}

// DefaultAcademicPeriod returns the 2024-2025 academic year
func DefaultAcademicPeriod() AcademicPeriod {
	return AcademicPeriod{
		Start: config.AcademicYearStart,
		End:   config.AcademicYearEnd,
	}
}

// FillOutcome describes what the completion pass did to a row's score
type FillOutcome int

const (
	// OutcomePreserved means the row already had a score
	OutcomePreserved FillOutcome = iota
	// OutcomeEstimated means the score was estimated from the ranking
	OutcomeEstimated
	// OutcomeUnresolved means the ranking had no numeric value; the score is the placeholder
	OutcomeUnresolved
)

// String returns the outcome name used in logs and metrics
func (o FillOutcome) String() string {
	switch o {
	case OutcomePreserved:
		return "preserved"
	case OutcomeEstimated:
		return "estimated"
	case OutcomeUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}
