package dataprocessing

import "rankcli/internal/config"

// Summary is the run report printed after the completed sheet is written
type Summary struct {
	Total        int `json:"total"`
	WithScore    int `json:"with_score"`
	WithoutScore int `json:"without_score"`
}

// Summarize counts the records whose score is, or is not, the placeholder
func Summarize(records []*Record) Summary {
	summary := Summary{Total: len(records)}
	for _, record := range records {
		if record.Get(config.ColumnScore) != config.ScorePlaceholder {
			summary.WithScore++
		}
	}
	summary.WithoutScore = summary.Total - summary.WithScore
	return summary
}
