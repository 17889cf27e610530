package classify

import (
	"reflect"
	"testing"
)

func TestClassify_FirstAndLastName(t *testing.T) {
	c := NewDefault()
	res := c.Classify([]string{"First Name", "Last Name", "Quiz 1", "Final Exam"})

	if res.FirstName == nil || *res.FirstName != "First Name" {
		t.Errorf("Expected first name column 'First Name', got %v", res.FirstName)
	}
	if res.LastName == nil || *res.LastName != "Last Name" {
		t.Errorf("Expected last name column 'Last Name', got %v", res.LastName)
	}
	for _, a := range res.Assessments {
		if a == "First Name" || a == "Last Name" {
			t.Errorf("Name column %q must not be reported as an assessment", a)
		}
	}
	if len(res.Assessments) != 2 {
		t.Errorf("Expected 2 assessment columns, got %d", len(res.Assessments))
	}
}

func TestClassify_ExclusionBeatsSubstringCollision(t *testing.T) {
	// "Final Exam" must not be mistaken for a last-name column even though
	// pattern matching alone could collide on loose substrings.
	c := NewDefault()
	res := c.Classify([]string{"Final Exam", "Surname"})

	if res.LastName == nil || *res.LastName != "Surname" {
		t.Errorf("Expected last name column 'Surname', got %v", res.LastName)
	}
	if len(res.Assessments) != 1 || res.Assessments[0] != "Final Exam" {
		t.Errorf("Expected 'Final Exam' as the only assessment, got %v", res.Assessments)
	}
}

func TestClassify_GenericNameFallback(t *testing.T) {
	c := NewDefault()
	res := c.Classify([]string{"Name"})

	if res.FirstName != nil || res.LastName != nil {
		t.Errorf("Expected no first/last name, got %v / %v", res.FirstName, res.LastName)
	}
	if res.GenericName == nil || *res.GenericName != "Name" {
		t.Errorf("Expected generic name column 'Name', got %v", res.GenericName)
	}
	if res.Ambiguous() {
		t.Error("A discoverable generic name column must not be ambiguous")
	}
}

func TestClassify_AllNullPromptsManualPick(t *testing.T) {
	c := NewDefault()
	res := c.Classify([]string{"Column A", "Column B"})

	if !res.Ambiguous() {
		t.Error("Expected ambiguous result when no name column exists")
	}
}

func TestClassify_FirstMatchWinsPositionally(t *testing.T) {
	c := NewDefault()
	res := c.Classify([]string{"Given Name", "First Name"})

	// Tie-break is positional, not scored: the earlier header wins even
	// though "First Name" is a more specific pattern.
	if res.FirstName == nil || *res.FirstName != "Given Name" {
		t.Errorf("Expected 'Given Name' to win positionally, got %v", res.FirstName)
	}
}

func TestClassify_Identifier(t *testing.T) {
	c := NewDefault()
	res := c.Classify([]string{"Student No", "First Name", "Last Name"})

	if res.Identifier == nil || *res.Identifier != "Student No" {
		t.Errorf("Expected identifier column 'Student No', got %v", res.Identifier)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewDefault()
	headers := []string{"ID", "First Name", "Last Name", "Quiz 1", "Lab 2", "Final Exam"}

	first := c.Classify(headers)
	second := c.Classify(headers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classification is not idempotent: %+v vs %+v", first, second)
	}
}

func TestClassify_InjectableConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstNamePatterns = []string{"vorname"}
	c := New(cfg)

	res := c.Classify([]string{"Vorname", "Nachname"})
	if res.FirstName == nil || *res.FirstName != "Vorname" {
		t.Errorf("Expected custom pattern to match 'Vorname', got %v", res.FirstName)
	}
}
