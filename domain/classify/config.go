// Package classify assigns semantic roles to spreadsheet header columns
// using keyword and substring heuristics. It is pure: no IO, no hidden
// state, deterministic for a given Config and header sequence.
package classify

// Config holds the pattern and exclusion lists driving classification.
// Both are injectable so behavior can be tuned and tested without code
// changes; DefaultConfig reproduces the stock heuristics.
type Config struct {
	// ExclusionKeywords mark assessment-like headers. A header containing
	// any of these is removed from name/identifier candidacy and reported
	// as an assessment column.
	ExclusionKeywords []string

	// FirstNamePatterns etc. are case-insensitive substrings tried against
	// each header in header order; the first matching header wins.
	FirstNamePatterns   []string
	LastNamePatterns    []string
	IdentifierPatterns  []string
	GenericNamePatterns []string
}

// DefaultConfig returns the stock heuristic configuration.
func DefaultConfig() Config {
	return Config{
		ExclusionKeywords: []string{
			"quiz", "lab", "laboratory", "exam", "test", "midterm", "final",
			"assignment", "activity", "score", "grade", "points", "pts",
			"percentage", "%", "completion", "prelim", "prefinal",
		},
		FirstNamePatterns: []string{
			"first name", "firstname", "first_name", "fname",
			"given name", "givenname", "first",
		},
		LastNamePatterns: []string{
			"last name", "lastname", "last_name", "lname",
			"surname", "family name", "familyname", "last",
		},
		IdentifierPatterns:  []string{"id", "no", "#"},
		GenericNamePatterns: []string{"name", "student"},
	}
}

// ExamSequence is the fixed ordered list walked when naming a new exam
// column: the first entry not already present as a substring of an existing
// header is used.
var ExamSequence = []string{"Prelim Exam", "Midterm Exam", "Prefinal Exam", "Final Exam"}
