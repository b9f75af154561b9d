// Package answers joins the question catalog to the independently keyed
// answer dataset and scores submissions against the joined records.
package answers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the answer payload. Only MCQ, MSQ and NAT are
// auto-evaluable; the rest exist so the UI can explain why a question
// cannot be checked.
type Kind string

const (
	KindMCQ         Kind = "MCQ"
	KindMSQ         Kind = "MSQ"
	KindNAT         Kind = "NAT"
	KindUnsupported Kind = "UNSUPPORTED"
	KindSubjective  Kind = "SUBJECTIVE"
	KindAmbiguous   Kind = "AMBIGUOUS"
)

// Tolerance bounds NAT comparison around the point value.
type Tolerance struct {
	Abs float64 `json:"abs"`
	Rel float64 `json:"rel,omitempty"`
}

// Record is one answer-key entry, tagged by Kind with per-variant
// payload: Letter for MCQ, Letters for MSQ, Value or Min/Max for NAT.
// Reading the field of another variant is a bug, not a fallback.
type Record struct {
	UID         string
	QuestionUID string
	Kind        Kind
	Letter      string
	Letters     []string
	Value       float64
	Min, Max    float64
	IsRange     bool
	Tolerance   Tolerance
	Notes       string
}

type rawRecord struct {
	UID         string          `json:"uid"`
	QuestionUID string          `json:"question_uid,omitempty"`
	Type        string          `json:"type"`
	Answer      json.RawMessage `json:"answer,omitempty"`
	Tolerance   *Tolerance      `json:"tolerance,omitempty"`
	Source      *struct {
		Notes string `json:"notes,omitempty"`
	} `json:"source,omitempty"`
}

type rawRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rec := Record{
		UID:         raw.UID,
		QuestionUID: raw.QuestionUID,
		Kind:        Kind(strings.ToUpper(strings.TrimSpace(raw.Type))),
	}
	if raw.Tolerance != nil {
		rec.Tolerance = *raw.Tolerance
	}
	if raw.Source != nil {
		rec.Notes = raw.Source.Notes
	}

	switch rec.Kind {
	case KindMCQ:
		if err := json.Unmarshal(raw.Answer, &rec.Letter); err != nil {
			return fmt.Errorf("mcq answer for %s: %w", raw.UID, err)
		}
		rec.Letter = strings.ToUpper(strings.TrimSpace(rec.Letter))
	case KindMSQ:
		if err := json.Unmarshal(raw.Answer, &rec.Letters); err != nil {
			return fmt.Errorf("msq answer for %s: %w", raw.UID, err)
		}
		for i, l := range rec.Letters {
			rec.Letters[i] = strings.ToUpper(strings.TrimSpace(l))
		}
	case KindNAT:
		if len(raw.Answer) > 0 && raw.Answer[0] == '{' {
			var rng rawRange
			if err := json.Unmarshal(raw.Answer, &rng); err != nil {
				return fmt.Errorf("nat range for %s: %w", raw.UID, err)
			}
			rec.Min, rec.Max, rec.IsRange = rng.Min, rng.Max, true
		} else if err := json.Unmarshal(raw.Answer, &rec.Value); err != nil {
			return fmt.Errorf("nat answer for %s: %w", raw.UID, err)
		}
	case KindUnsupported, KindSubjective, KindAmbiguous:
		// No payload.
	default:
		return fmt.Errorf("unknown answer type %q for %s", raw.Type, raw.UID)
	}
	*r = rec
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	raw := rawRecord{
		UID:         r.UID,
		QuestionUID: r.QuestionUID,
		Type:        string(r.Kind),
	}
	var err error
	switch r.Kind {
	case KindMCQ:
		raw.Answer, err = json.Marshal(r.Letter)
	case KindMSQ:
		raw.Answer, err = json.Marshal(r.Letters)
	case KindNAT:
		if r.IsRange {
			raw.Answer, err = json.Marshal(rawRange{Min: r.Min, Max: r.Max})
		} else {
			raw.Answer, err = json.Marshal(r.Value)
		}
		tol := r.Tolerance
		raw.Tolerance = &tol
	}
	if err != nil {
		return nil, err
	}
	if r.Notes != "" {
		raw.Source = &struct {
			Notes string `json:"notes,omitempty"`
		}{Notes: r.Notes}
	}
	return json.Marshal(raw)
}
