package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AssessmentCategory is a kind of gradable column an instructor can add.
type AssessmentCategory string

const (
	CategoryQuiz AssessmentCategory = "quiz"
	CategoryLab  AssessmentCategory = "lab"
	CategoryExam AssessmentCategory = "exam"
)

// ParseCategory converts a request string into an AssessmentCategory.
func ParseCategory(s string) (AssessmentCategory, bool) {
	switch AssessmentCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryQuiz:
		return CategoryQuiz, true
	case CategoryLab:
		return CategoryLab, true
	case CategoryExam:
		return CategoryExam, true
	}
	return "", false
}

var digitRun = regexp.MustCompile(`\d+`)

// NextColumnName names a new assessment column for the category given the
// existing headers.
//
// Quiz/Lab: scan headers containing the category keyword, take the first
// run of digits in each, and use max+1 (so "Quiz 2", "quiz3" → "Quiz 4").
// "lab" also matches "laboratory".
//
// Exam: walk ExamSequence and pick the first name not already present as a
// substring of any header, defaulting to "Final Exam" when all four exist.
func NextColumnName(category AssessmentCategory, headers []string) string {
	switch category {
	case CategoryQuiz:
		return numberedName("Quiz", []string{"quiz"}, headers)
	case CategoryLab:
		return numberedName("Lab", []string{"lab", "laboratory"}, headers)
	case CategoryExam:
		return nextExamName(headers)
	}
	return ""
}

func numberedName(label string, keywords []string, headers []string) string {
	max := 0
	for _, h := range headers {
		lower := strings.ToLower(h)
		matched := false
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if run := digitRun.FindString(h); run != "" {
			if n, err := strconv.Atoi(run); err == nil && n > max {
				max = n
			}
		}
	}
	return fmt.Sprintf("%s %d", label, max+1)
}

func nextExamName(headers []string) string {
	for _, name := range ExamSequence {
		if !containedInAny(name, headers) {
			return name
		}
	}
	return ExamSequence[len(ExamSequence)-1]
}

func containedInAny(name string, headers []string) bool {
	lowerName := strings.ToLower(name)
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), lowerName) {
			return true
		}
	}
	return false
}
