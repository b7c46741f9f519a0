package dataprocessing

import (
	"strconv"

	"rankcli/internal/config"
)

// ScoreFillProcessor fills placeholder scores from the ranking column and
// stamps the academic period onto every row
type ScoreFillProcessor struct {
	period AcademicPeriod
}

// NewScoreFillProcessor creates a new score-fill processor
func NewScoreFillProcessor(period AcademicPeriod) *ScoreFillProcessor {
	return &ScoreFillProcessor{period: period}
}

// IsPlaceholderScore reports whether a score cell still needs a value
func IsPlaceholderScore(score string) bool {
	return score == "" || score == config.ScorePlaceholder
}

// FormatScore renders an estimated score with one fractional digit
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// CompleteRecord returns a completed copy of r; r itself is not modified
func (p *ScoreFillProcessor) CompleteRecord(r *Record) (*Record, FillOutcome) {
	out := r.Clone()
	outcome := OutcomePreserved

	if IsPlaceholderScore(out.Get(config.ColumnScore)) {
		if score, ok := EstimateFromRanking(out.Get(config.ColumnRanking)); ok {
			out.Set(config.ColumnScore, FormatScore(score))
			outcome = OutcomeEstimated
		} else {
			out.Set(config.ColumnScore, config.ScorePlaceholder)
			outcome = OutcomeUnresolved
		}
	}

	out.Set(config.ColumnStartDate, p.period.Start)
	out.Set(config.ColumnEndDate, p.period.End)

	return out, outcome
}

// FillMissingData completes every record of the table
func (p *ScoreFillProcessor) FillMissingData(table *Table) *Table {
	completed, _ := p.FillMissingDataWithStats(table)
	return completed
}

// FillStatistics represents score-fill operation statistics
type FillStatistics struct {
	TotalRecords int
	Preserved    int
	Estimated    int
	Unresolved   int
}

// FillMissingDataWithStats completes every record and counts what happened to each score
func (p *ScoreFillProcessor) FillMissingDataWithStats(table *Table) (*Table, FillStatistics) {
	out := &Table{
		Header:  p.completedHeader(table.Header),
		Records: make([]*Record, 0, len(table.Records)),
	}
	stats := FillStatistics{TotalRecords: len(table.Records)}

	for _, record := range table.Records {
		completed, outcome := p.CompleteRecord(record)
		switch outcome {
		case OutcomePreserved:
			stats.Preserved++
		case OutcomeEstimated:
			stats.Estimated++
		case OutcomeUnresolved:
			stats.Unresolved++
		}
		out.Records = append(out.Records, completed)
	}

	if len(out.Records) > 0 {
		out.Header = out.Records[0].Columns()
	}
	return out, stats
}

// completedHeader is the input header with the date columns appended when absent
func (p *ScoreFillProcessor) completedHeader(header []string) []string {
	if len(header) == 0 {
		return nil
	}
	out := NewRecord(header, nil)
	out.Set(config.ColumnStartDate, "")
	out.Set(config.ColumnEndDate, "")
	return out.Columns()
}
