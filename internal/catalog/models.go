package catalog

import (
	"strings"

	"github.com/gateprep/gatebank/internal/identity"
)

// Question is one entry of the in-memory question set. Raw source fields
// keep their JSON names; QuestionUID and ExamUID are assigned once at
// normalization and never change for the session.
type Question struct {
	QuestionUID string   `json:"question_uid,omitempty"`
	ExamUID     string   `json:"exam_uid,omitempty"`
	Title       string   `json:"title"`
	Body        string   `json:"question"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags"`
	YearTag     string   `json:"year,omitempty"`
	IDStr       string   `json:"id_str,omitempty"`
	Volume      int      `json:"volume,omitempty"`
}

// Year returns the 4-digit exam year, from the year field or a year tag
// in the tag list. Empty when the record carries neither.
func (q Question) Year() string {
	if y, _, ok := identity.ParseYearTag(q.YearTag); ok {
		return y
	}
	for _, tag := range q.Tags {
		if y, _, ok := identity.ParseYearTag(tag); ok {
			return y
		}
	}
	return ""
}

// hasJoinIdentity reports whether the raw entry carries any identifier
// usable to resolve an answer: an explicit uid, a source-link id, a
// volume+id_str pair, or a derivable exam uid.
func hasJoinIdentity(q Question) bool {
	if strings.TrimSpace(q.QuestionUID) != "" {
		return true
	}
	if _, ok := identity.SourceID(q.Link); ok {
		return true
	}
	if _, ok := identity.AnswerUID(q.Volume, q.IDStr); ok {
		return true
	}
	return identity.ExamUIDFor(q.ExamUID, q.Link, q.Title, q.YearTag) != ""
}

// Source records titled exactly "General" are per-chapter placeholders,
// not questions.
const placeholderTitle = "General"

// normalize defaults missing fields and assigns the canonical uids.
func normalize(q Question) Question {
	q.Title = strings.TrimSpace(q.Title)
	if q.Tags == nil {
		q.Tags = []string{}
	}
	q.QuestionUID = identity.QuestionUID(q.QuestionUID, q.Title, q.Body, q.Link)
	q.ExamUID = identity.ExamUIDFor(q.ExamUID, q.Link, q.Title, q.YearTag)
	return q
}
