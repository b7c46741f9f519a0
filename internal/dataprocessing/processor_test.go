package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(header []string, rows ...[]string) *Table {
	table := &Table{Header: header}
	for _, row := range rows {
		table.Records = append(table.Records, NewRecord(header, row))
	}
	return table
}

func TestCompleteRecord(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())
	header := []string{"University", "Ranking", "Score"}

	tests := []struct {
		name        string
		ranking     string
		score       string
		wantScore   string
		wantOutcome FillOutcome
	}{
		{"estimated from range", "1201-1400", "-", "3.5", OutcomeEstimated},
		{"estimated from single rank", "11", "-", "89.7", OutcomeEstimated},
		{"empty score is filled", "100", "", "55.0", OutcomeEstimated},
		{"existing score passes through", "12", "88.2", "88.2", OutcomePreserved},
		{"existing score is not reformatted", "12", "88.20", "88.20", OutcomePreserved},
		{"non-numeric score is kept", "12", "n/a", "n/a", OutcomePreserved},
		{"unparsable ranking", "abc", "-", "-", OutcomeUnresolved},
		{"empty ranking with empty score", "", "", "-", OutcomeUnresolved},
		{"three-part range", "1-2-3", "-", "-", OutcomeUnresolved},
		{"zero estimate is a value", "450", "-", "0.0", OutcomeEstimated},
		{"zero estimate from range", "401-500", "-", "0.0", OutcomeEstimated},
		{"zero estimate at band edge", "1000", "-", "0.0", OutcomeEstimated},
		{"rank zero is a rank", "0", "-", "100.0", OutcomeEstimated},
		{"negative estimate is kept", "500", "-", "-5.0", OutcomeEstimated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewRecord(header, []string{"X", tt.ranking, tt.score})
			out, outcome := p.CompleteRecord(in)

			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantScore, out.Get("Score"))
			assert.Equal(t, "X", out.Get("University"))
			assert.Equal(t, tt.ranking, out.Get("Ranking"))
			assert.Equal(t, "2024-09-01", out.Get("Start Date"))
			assert.Equal(t, "2025-06-30", out.Get("End Date"))

			// input is untouched
			assert.Equal(t, tt.score, in.Get("Score"))
			assert.Equal(t, 3, in.Len())
		})
	}
}

func TestCompleteRecord_MissingScoreColumn(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())
	in := NewRecord([]string{"University", "Ranking"}, []string{"X", "10"})

	out, outcome := p.CompleteRecord(in)
	assert.Equal(t, OutcomeEstimated, outcome)
	assert.Equal(t, "95.0", out.Get("Score"))
	assert.Equal(t, []string{"University", "Ranking", "Score", "Start Date", "End Date"}, out.Columns())
}

func TestCompleteRecord_OverwritesExistingDates(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())
	header := []string{"Start Date", "Ranking", "Score", "End Date"}
	in := NewRecord(header, []string{"2000-01-01", "5", "70", "2000-12-31"})

	out, _ := p.CompleteRecord(in)
	assert.Equal(t, header, out.Columns())
	assert.Equal(t, "2024-09-01", out.Get("Start Date"))
	assert.Equal(t, "2025-06-30", out.Get("End Date"))
}

func TestCompleteRecord_CustomPeriod(t *testing.T) {
	p := NewScoreFillProcessor(AcademicPeriod{Start: "2025-09-01", End: "2026-06-30"})
	out, _ := p.CompleteRecord(NewRecord([]string{"Ranking", "Score"}, []string{"1", "100"}))
	assert.Equal(t, "2025-09-01", out.Get("Start Date"))
	assert.Equal(t, "2026-06-30", out.Get("End Date"))
}

func TestFillMissingData(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())
	header := []string{"Rank", "University", "Ranking", "Score", "Country"}
	table := newTestTable(header,
		[]string{"1", "MIT", "1", "100", "United States"},
		[]string{"2", "Y", "1201-1400", "-", "Japan"},
		[]string{"3", "Z", "unranked", "-", "Japan"},
	)

	out := p.FillMissingData(table)

	require.Equal(t, table.Len(), out.Len())
	wantHeader := append(append([]string{}, header...), "Start Date", "End Date")
	assert.Equal(t, wantHeader, out.Header)
	for i, r := range out.Records {
		assert.Equal(t, wantHeader, r.Columns(), "row %d", i)
		assert.Equal(t, table.Records[i].Get("University"), r.Get("University"))
	}
	assert.Equal(t, "100", out.Records[0].Get("Score"))
	assert.Equal(t, "3.5", out.Records[1].Get("Score"))
	assert.Equal(t, "-", out.Records[2].Get("Score"))

	// the input table is not modified
	assert.Equal(t, header, table.Header)
	assert.Equal(t, "-", table.Records[1].Get("Score"))
}

func TestFillMissingData_Idempotent(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())
	table := newTestTable([]string{"University", "Ranking", "Score"},
		[]string{"A", "51-100", "-"},
		[]string{"B", "7", "91"},
		[]string{"C", "n/a", ""},
	)

	once := p.FillMissingData(table)
	twice := p.FillMissingData(once)

	assert.Equal(t, once.Header, twice.Header)
	require.Equal(t, once.Len(), twice.Len())
	for i := range once.Records {
		assert.Equal(t, once.Records[i].Values(), twice.Records[i].Values(), "row %d", i)
	}
}

func TestFillMissingData_EmptyTable(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())

	t.Run("no header", func(t *testing.T) {
		out := p.FillMissingData(&Table{})
		assert.Equal(t, 0, out.Len())
		assert.Empty(t, out.Header)
	})

	t.Run("header only", func(t *testing.T) {
		out := p.FillMissingData(&Table{Header: []string{"Ranking", "Score"}})
		assert.Equal(t, 0, out.Len())
		assert.Equal(t, []string{"Ranking", "Score", "Start Date", "End Date"}, out.Header)
	})
}

func TestFillMissingDataWithStats(t *testing.T) {
	p := NewScoreFillProcessor(DefaultAcademicPeriod())
	table := newTestTable([]string{"Ranking", "Score"},
		[]string{"1", "100"},
		[]string{"5", "-"},
		[]string{"1001+", "-"},
		[]string{"", ""},
	)

	_, stats := p.FillMissingDataWithStats(table)
	assert.Equal(t, FillStatistics{TotalRecords: 4, Preserved: 1, Estimated: 1, Unresolved: 2}, stats)
}

func TestFillOutcome_String(t *testing.T) {
	assert.Equal(t, "preserved", OutcomePreserved.String())
	assert.Equal(t, "estimated", OutcomeEstimated.String())
	assert.Equal(t, "unresolved", OutcomeUnresolved.String())
	assert.Equal(t, "unknown", FillOutcome(42).String())
}

func TestScoreFillProcessor_ImplementsProcessor(t *testing.T) {
	var _ Processor = NewScoreFillProcessor(DefaultAcademicPeriod())
}
