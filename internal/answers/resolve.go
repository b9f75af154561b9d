package answers

import (
	"github.com/gateprep/gatebank/internal/catalog"
	"github.com/gateprep/gatebank/internal/identity"
)

// Resolve returns the best-matching answer record for a question, or
// (zero, false) when no map holds a match. Absence is a displayable
// state, not an error.
//
// The unsupported registry is checked before any real lookup and wins
// even when a real record exists under the same question uid. That
// precedence is deliberate upstream behavior; if a correction ever adds
// a real answer without retiring the registry entry, the registry still
// masks it.
func (k *Key) Resolve(q catalog.Question) (Record, bool) {
	questionUID := identity.QuestionUID(q.QuestionUID, q.Title, q.Body, q.Link)
	if k.IsUnsupported(questionUID) {
		return Record{
			Kind: KindUnsupported,
			UID:  identity.UnsupportedUID(questionUID),
		}, true
	}

	answerUID, _ := identity.AnswerUID(q.Volume, q.IDStr)
	examUID := identity.ExamUIDFor(q.ExamUID, q.Link, q.Title, q.YearTag)

	// Prioritized (key, map) pairs, first hit wins.
	lookups := []struct {
		key string
		m   map[string]Record
	}{
		{questionUID, k.byQuestionUID},
		{answerUID, k.byAnswerUID},
		{examUID, k.byExamUID},
	}
	for _, l := range lookups {
		if l.key == "" {
			continue
		}
		if rec, ok := l.m[l.key]; ok {
			return rec, true
		}
	}
	return Record{}, false
}

// Identity is the diagnostic view of a question's join keys. Storage
// tracking and answer-joining are decoupled: StorageUID always exists
// (content-hash fallback) even when HasIdentity is false.
type Identity struct {
	HasIdentity bool   `json:"has_identity"`
	Reason      string `json:"reason,omitempty"`
	StorageUID  string `json:"storage_uid"`
	QuestionUID string `json:"question_uid"`
	AnswerUID   string `json:"answer_uid,omitempty"`
	ExamUID     string `json:"exam_uid,omitempty"`
}

const reasonMissingJoinKeys = "missing_join_keys"

// QuestionIdentity reports which uids resolution would attempt for a
// question and whether any of them is a real join key.
func QuestionIdentity(q catalog.Question) Identity {
	questionUID := identity.QuestionUID(q.QuestionUID, q.Title, q.Body, q.Link)
	answerUID, _ := identity.AnswerUID(q.Volume, q.IDStr)
	examUID := identity.ExamUIDFor(q.ExamUID, q.Link, q.Title, q.YearTag)

	id := Identity{
		StorageUID:  questionUID,
		QuestionUID: questionUID,
		AnswerUID:   answerUID,
		ExamUID:     examUID,
	}
	id.HasIdentity = !identity.IsLocal(questionUID) || answerUID != "" || examUID != ""
	if !id.HasIdentity {
		id.Reason = reasonMissingJoinKeys
	}
	return id
}
