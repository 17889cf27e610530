package app

import (
	"context"
	"strings"

	"rosterd/domain/classify"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/internal/errors"
	"rosterd/ports"
)

// RosterService serves the stored roster views: classified columns, student
// records, assessment columns and score cells.
type RosterService struct {
	files      ports.ImportFileRepository
	overrides  ports.OverrideRepository
	classifier *classify.Classifier
}

// NewRosterService creates a roster service.
func NewRosterService(files ports.ImportFileRepository, overrides ports.OverrideRepository, classifier *classify.Classifier) *RosterService {
	return &RosterService{files: files, overrides: overrides, classifier: classifier}
}

// ColumnView pairs a header with its resolved role.
type ColumnView struct {
	Header string            `json:"header"`
	Role   roster.ColumnRole `json:"role"`
}

// Columns classifies the stored sheet's headers and applies any
// session-scoped manual overrides on top. Ambiguous means no name column of
// any kind was found and the caller should prompt for a manual pick.
func (s *RosterService) Columns(ctx context.Context, fileID core.ID) (cols []ColumnView, ambiguous bool, err error) {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return nil, false, err
	}
	overrides, err := s.overrides.Get(ctx, fileID)
	if err != nil {
		return nil, false, err
	}

	result := s.classifier.Classify(table.Headers)
	cols = make([]ColumnView, 0, len(table.Headers))
	for _, h := range table.Headers {
		role := baseRole(h, result)
		cols = append(cols, ColumnView{Header: h, Role: overrides.Apply(h, role)})
	}

	ambiguous = result.Ambiguous() && !hasNameOverride(overrides)
	return cols, ambiguous, nil
}

// OverrideColumn records a manual role pick for one header. The override
// lives for the session only; reloading the file reclassifies from scratch.
func (s *RosterService) OverrideColumn(ctx context.Context, fileID core.ID, header string, role roster.ColumnRole) error {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return err
	}
	if table.ColumnIndex(header) < 0 {
		return errors.InvalidInput("unknown column header")
	}
	switch role {
	case roster.RoleFirstName, roster.RoleLastName, roster.RoleIdentifier,
		roster.RoleAssessment, roster.RoleUnclassified:
	default:
		return errors.InvalidInput("unknown column role")
	}
	return s.overrides.Set(ctx, fileID, header, role)
}

// Students derives student records from the stored sheet, optionally
// filtered by a case-insensitive display-name query.
func (s *RosterService) Students(ctx context.Context, fileID core.ID, query string) ([]roster.StudentRecord, error) {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return nil, err
	}
	names, err := s.nameColumns(ctx, fileID, &table)
	if err != nil {
		return nil, err
	}

	records := table.Records(names)
	if query == "" {
		return records, nil
	}
	q := strings.ToLower(query)
	filtered := records[:0]
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.DisplayName), q) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// Student returns a single student record by row index.
func (s *RosterService) Student(ctx context.Context, fileID core.ID, row int) (*roster.StudentRecord, error) {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(table.Rows) {
		return nil, core.ErrStudentNotFound
	}
	names, err := s.nameColumns(ctx, fileID, &table)
	if err != nil {
		return nil, err
	}
	rec := table.Records(names)[row]
	return &rec, nil
}

// AddAssessmentColumn appends a new assessment column named after the
// category's existing headers ("Quiz 3", "Midterm Exam") with an empty cell
// on every row, and persists the grown table.
func (s *RosterService) AddAssessmentColumn(ctx context.Context, fileID core.ID, category classify.AssessmentCategory) (string, error) {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return "", err
	}
	header := classify.NextColumnName(category, table.Headers)
	if header == "" {
		return "", errors.InvalidInput("unknown assessment category")
	}
	table.AddColumn(header)
	if err := s.files.UpdateTable(ctx, fileID, table); err != nil {
		return "", err
	}
	return header, nil
}

// SetCell writes a value (typically a transcribed score) into a row/column
// of the stored sheet.
func (s *RosterService) SetCell(ctx context.Context, fileID core.ID, row int, header, value string) error {
	table, err := s.files.GetTable(ctx, fileID)
	if err != nil {
		return err
	}
	col := table.ColumnIndex(header)
	if col < 0 {
		return errors.InvalidInput("unknown column header")
	}
	if !table.SetCell(row, col, value) {
		return core.ErrStudentNotFound
	}
	return s.files.UpdateTable(ctx, fileID, table)
}

// nameColumns resolves which columns feed display names, honoring overrides
// before classifier output.
func (s *RosterService) nameColumns(ctx context.Context, fileID core.ID, table *roster.Table) (roster.NameColumns, error) {
	overrides, err := s.overrides.Get(ctx, fileID)
	if err != nil {
		return roster.NameColumns{}, err
	}

	result := s.classifier.Classify(table.Headers)
	names := roster.NameColumns{}
	if result.FirstName != nil {
		names.First = *result.FirstName
	}
	if result.LastName != nil {
		names.Last = *result.LastName
	}
	if result.GenericName != nil {
		names.Generic = *result.GenericName
	}
	for header, role := range overrides {
		switch role {
		case roster.RoleFirstName:
			names.First = header
		case roster.RoleLastName:
			names.Last = header
		}
	}
	return names, nil
}

func baseRole(header string, result classify.Result) roster.ColumnRole {
	switch {
	case result.FirstName != nil && *result.FirstName == header:
		return roster.RoleFirstName
	case result.LastName != nil && *result.LastName == header:
		return roster.RoleLastName
	case result.Identifier != nil && *result.Identifier == header:
		return roster.RoleIdentifier
	}
	for _, a := range result.Assessments {
		if a == header {
			return roster.RoleAssessment
		}
	}
	return roster.RoleUnclassified
}

func hasNameOverride(overrides roster.RoleOverrides) bool {
	for _, role := range overrides {
		if role == roster.RoleFirstName || role == roster.RoleLastName {
			return true
		}
	}
	return false
}
