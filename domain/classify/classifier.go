package classify

import "strings"

// Result is the outcome of classifying a header sequence. Nil pointers mean
// "not found". When neither FirstName/LastName nor GenericName resolved, the
// caller must prompt for a manual column pick; that ambiguity is a UI
// branch, not an error.
type Result struct {
	FirstName   *string
	LastName    *string
	Identifier  *string
	GenericName *string
	Assessments []string
}

// Ambiguous reports whether no name column of any kind was found.
func (r Result) Ambiguous() bool {
	return r.FirstName == nil && r.LastName == nil && r.GenericName == nil
}

// Classifier applies the configured heuristics to header sequences.
type Classifier struct {
	cfg Config
}

// New creates a classifier with the given configuration.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// NewDefault creates a classifier with the stock configuration.
func NewDefault() *Classifier {
	return New(DefaultConfig())
}

// Classify assigns roles to the given headers. Matching is case-insensitive
// substring; ties break positionally (first matching header in header order
// wins, never scored). Headers hit by the exclusion list are reported as
// assessments and never considered as name or identifier candidates.
func (c *Classifier) Classify(headers []string) Result {
	var res Result

	// Partition headers once: excluded ones become assessment columns,
	// survivors stay name/identifier candidates.
	candidates := make([]string, 0, len(headers))
	for _, h := range headers {
		if c.excluded(h) {
			res.Assessments = append(res.Assessments, h)
			continue
		}
		candidates = append(candidates, h)
	}

	res.FirstName = firstMatch(candidates, c.cfg.FirstNamePatterns)
	res.LastName = firstMatch(candidates, c.cfg.LastNamePatterns, res.FirstName)
	res.Identifier = firstMatch(candidates, c.cfg.IdentifierPatterns, res.FirstName, res.LastName)

	if res.FirstName == nil || res.LastName == nil {
		res.GenericName = firstMatch(candidates, c.cfg.GenericNamePatterns, res.FirstName, res.LastName, res.Identifier)
	}

	return res
}

func (c *Classifier) excluded(header string) bool {
	lower := strings.ToLower(header)
	for _, kw := range c.cfg.ExclusionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// firstMatch returns the first header containing any pattern, skipping
// headers already claimed by an earlier role.
func firstMatch(headers []string, patterns []string, claimed ...*string) *string {
	for _, h := range headers {
		if isClaimed(h, claimed) {
			continue
		}
		lower := strings.ToLower(h)
		for _, p := range patterns {
			if strings.Contains(lower, p) {
				out := h
				return &out
			}
		}
	}
	return nil
}

func isClaimed(header string, claimed []*string) bool {
	for _, c := range claimed {
		if c != nil && *c == header {
			return true
		}
	}
	return false
}
