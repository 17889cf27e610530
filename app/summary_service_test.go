package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/adapters/memory"
	"rosterd/domain/class"
	"rosterd/domain/classify"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/domain/score"
)

func newSummaryFixture(t *testing.T, raw [][]string) (*SummaryService, core.ID) {
	t.Helper()
	files := memory.NewImportFileRepository()
	file := &class.ImportFile{ID: core.NewID(), ClassID: core.NewID(), Name: "roster.csv", UploadedAt: time.Now()}
	require.NoError(t, files.Create(context.Background(), file, roster.NewTable(raw)))

	svc := NewSummaryService(files, classify.NewDefault(), score.NewDefaultNormalizer())
	return svc, file.ID
}

func TestSummarize(t *testing.T) {
	svc, fileID := newSummaryFixture(t, [][]string{
		{"First Name", "Last Name", "Quiz 1"},
		{"Ada", "Lovelace", "80/100"},
		{"Grace", "Hopper", "90%"},
		{"Alan", "Turing", "100"},
		{"Katherine", "Johnson", "-"},   // placeholder: excluded upstream
		{"Dorothy", "Vaughan", "sick"},  // unparseable: skipped
	})

	summaries, err := svc.Summarize(context.Background(), fileID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Quiz 1", s.Header)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1, s.Skipped)
	assert.InDelta(t, 90.0, s.Mean, 1e-9)
	assert.InDelta(t, 90.0, s.Median, 1e-9)
	assert.InDelta(t, 80.0, s.Min, 1e-9)
	assert.InDelta(t, 100.0, s.Max, 1e-9)
}

func TestSummarize_MultipleAssessments(t *testing.T) {
	svc, fileID := newSummaryFixture(t, [][]string{
		{"Name", "Quiz 1", "Lab 1", "Final Exam"},
		{"Ada", "80", "70/100", "90%"},
		{"Grace", "60", "", "50/100"},
	})

	summaries, err := svc.Summarize(context.Background(), fileID)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	byHeader := make(map[string]AssessmentSummary)
	for _, s := range summaries {
		byHeader[s.Header] = s
	}
	assert.Equal(t, 2, byHeader["Quiz 1"].Count)
	assert.Equal(t, 1, byHeader["Lab 1"].Count, "empty cell excluded upstream")
	assert.InDelta(t, 70.0, byHeader["Final Exam"].Mean, 1e-9)
}

func TestSummarize_NoAssessments(t *testing.T) {
	svc, fileID := newSummaryFixture(t, [][]string{
		{"First Name", "Last Name"},
		{"Ada", "Lovelace"},
	})

	summaries, err := svc.Summarize(context.Background(), fileID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
