package answers

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Status of one evaluated submission.
type Status string

const (
	StatusOK           Status = "ok"
	StatusInvalidInput Status = "invalid_input"
)

// Submission is a user's response. Exactly one field is meaningful per
// answer kind: Letter for MCQ, Letters for MSQ, Value for NAT.
type Submission struct {
	Letter  string   `json:"letter,omitempty"`
	Letters []string `json:"letters,omitempty"`
	Value   string   `json:"value,omitempty"`
}

// Result of evaluating a submission. The submission rides along so the
// persistence layer can log attempts without re-threading it.
type Result struct {
	Correct    bool       `json:"correct"`
	Status     Status     `json:"status"`
	Submission Submission `json:"submission"`
}

// ErrNotEvaluable flags a precondition violation: unsupported,
// subjective and ambiguous records must be rejected at the UI boundary
// and never reach the evaluator.
type ErrNotEvaluable struct {
	Kind Kind
}

func (e ErrNotEvaluable) Error() string {
	return fmt.Sprintf("answer type %s is not auto-evaluable", e.Kind)
}

type strategy interface {
	evaluate(rec Record, sub Submission) Result
}

var strategies = map[Kind]strategy{
	KindMCQ: mcqStrategy{},
	KindMSQ: msqStrategy{},
	KindNAT: natStrategy{},
}

// Evaluate scores a submission against a resolved record. Malformed
// input is a Result with status invalid_input, never an error; only an
// unevaluable record kind is an error.
func Evaluate(rec Record, sub Submission) (Result, error) {
	s, ok := strategies[rec.Kind]
	if !ok {
		return Result{}, ErrNotEvaluable{Kind: rec.Kind}
	}
	return s.evaluate(rec, sub), nil
}

type mcqStrategy struct{}

func (mcqStrategy) evaluate(rec Record, sub Submission) Result {
	res := Result{Status: StatusOK, Submission: sub}
	letter := strings.TrimSpace(sub.Letter)
	if letter == "" {
		res.Status = StatusInvalidInput
		return res
	}
	res.Correct = strings.EqualFold(letter, rec.Letter)
	return res
}

type msqStrategy struct{}

func (msqStrategy) evaluate(rec Record, sub Submission) Result {
	res := Result{Status: StatusOK, Submission: sub}
	submitted := normalizeLetterSet(sub.Letters)
	if len(submitted) == 0 {
		res.Status = StatusInvalidInput
		return res
	}
	want := normalizeLetterSet(rec.Letters)
	res.Correct = equalLetterSets(submitted, want)
	return res
}

type natStrategy struct{}

func (natStrategy) evaluate(rec Record, sub Submission) Result {
	res := Result{Status: StatusOK, Submission: sub}
	value, err := strconv.ParseFloat(strings.TrimSpace(sub.Value), 64)
	if err != nil {
		res.Status = StatusInvalidInput
		return res
	}
	if rec.IsRange {
		res.Correct = value >= rec.Min && value <= rec.Max
		return res
	}
	// Default tolerance is exact match.
	diff := math.Abs(value - rec.Value)
	res.Correct = diff <= rec.Tolerance.Abs ||
		(rec.Tolerance.Rel > 0 && diff <= rec.Tolerance.Rel*math.Abs(rec.Value))
	return res
}

func normalizeLetterSet(letters []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(letters))
	for _, l := range letters {
		l = strings.ToUpper(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func equalLetterSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
