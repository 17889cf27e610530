package app

import (
	"context"
	"sync"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"rosterd/domain/classify"
	"rosterd/domain/core"
	"rosterd/domain/score"
	"rosterd/ports"
)

// AssessmentSummary holds the score statistics of one assessment column.
// Percentages come from the score normalizer; cells that are placeholders
// or fail to parse are skipped, not counted as zero.
type AssessmentSummary struct {
	Header  string  `json:"header"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Skipped int     `json:"skipped"`
}

// SummaryService computes per-assessment score statistics over stored
// sheets.
type SummaryService struct {
	files      ports.ImportFileRepository
	classifier *classify.Classifier
	normalizer *score.Normalizer
}

// NewSummaryService creates a summary service.
func NewSummaryService(files ports.ImportFileRepository, classifier *classify.Classifier, normalizer *score.Normalizer) *SummaryService {
	return &SummaryService{files: files, classifier: classifier, normalizer: normalizer}
}

// Summarize computes statistics for every assessment column of a file.
// Columns are independent, so they are computed concurrently.
func (s *SummaryService) Summarize(ctx context.Context, fileID core.ID) ([]AssessmentSummary, error) {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return nil, err
	}

	result := s.classifier.Classify(table.Headers)
	summaries := make([]AssessmentSummary, len(result.Assessments))

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	for i, header := range result.Assessments {
		i, header := i, header
		col := table.ColumnIndex(header)
		g.Go(func() error {
			summary := s.summarizeColumn(header, col, table.Rows)
			mu.Lock()
			summaries[i] = summary
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *SummaryService) summarizeColumn(header string, col int, rows [][]string) AssessmentSummary {
	summary := AssessmentSummary{Header: header}
	if col < 0 {
		return summary
	}

	var percentages []float64
	for _, row := range rows {
		cell := row[col]
		if !score.Extractable(cell) {
			continue
		}
		parsed, ok := s.normalizer.Parse(cell)
		if !ok {
			summary.Skipped++
			continue
		}
		percentages = append(percentages, parsed.Percentage)
	}

	summary.Count = len(percentages)
	if len(percentages) == 0 {
		return summary
	}

	// stats errors only on empty input, which is guarded above.
	summary.Mean, _ = stats.Mean(percentages)
	summary.Median, _ = stats.Median(percentages)
	summary.Min, _ = stats.Min(percentages)
	summary.Max, _ = stats.Max(percentages)
	return summary
}
