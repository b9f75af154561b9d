package answers

import (
	"testing"

	"github.com/gateprep/gatebank/internal/catalog"
)

func keyFromJSON(t *testing.T, payloads ...string) *Key {
	t.Helper()
	k := NewKey()
	for _, p := range payloads {
		if err := k.AddDataset([]byte(p)); err != nil {
			t.Fatalf("AddDataset: %v", err)
		}
	}
	return k
}

func TestResolveByQuestionUID(t *testing.T) {
	k := keyFromJSON(t, `{"records_by_question_uid":{
		"go:399311": {"type":"MSQ","answer":["A","B","C"]}
	}}`)

	rec, ok := k.Resolve(catalog.Question{QuestionUID: "go:399311"})
	if !ok {
		t.Fatal("expected a match")
	}
	if rec.Kind != KindMSQ || len(rec.Letters) != 3 {
		t.Errorf("got %+v", rec)
	}
}

func TestResolveFallsThroughToAnswerUID(t *testing.T) {
	k := keyFromJSON(t, `{"records_by_uid":{
		"v2:3.11.42": {"uid":"v2:3.11.42","type":"MCQ","answer":"B"}
	}}`)

	q := catalog.Question{
		QuestionUID: "local:deadbeef",
		Volume:      2,
		IDStr:       "3.11.42",
	}
	rec, ok := k.Resolve(q)
	if !ok {
		t.Fatal("expected a fallthrough match on the answer uid")
	}
	if rec.Kind != KindMCQ || rec.Letter != "B" {
		t.Errorf("got %+v", rec)
	}
}

func TestResolveFallsThroughToExamUID(t *testing.T) {
	k := keyFromJSON(t, `{"records_by_exam_uid":{
		"cse:2025:set2:main:q18": {"type":"NAT","answer":5,"tolerance":{"abs":0.5}}
	}}`)

	q := catalog.Question{
		QuestionUID: "go:460817",
		Link:        "https://gateoverflow.in/460817/gate-cse-2025-set-2-question-18",
	}
	rec, ok := k.Resolve(q)
	if !ok {
		t.Fatal("expected a fallthrough match on the exam uid")
	}
	if rec.Kind != KindNAT || rec.Value != 5 || rec.Tolerance.Abs != 0.5 {
		t.Errorf("got %+v", rec)
	}
}

func TestUnsupportedOverridesRealMatch(t *testing.T) {
	k := keyFromJSON(t, `{"records_by_question_uid":{
		"go:7": {"type":"MCQ","answer":"A"}
	}}`)
	k.MarkUnsupported("go:7")

	rec, ok := k.Resolve(catalog.Question{QuestionUID: "go:7"})
	if !ok {
		t.Fatal("expected the unsupported sentinel")
	}
	if rec.Kind != KindUnsupported {
		t.Errorf("unsupported registry must win over the real record, got %+v", rec)
	}
	if rec.UID != "unsupported:go:7" {
		t.Errorf("sentinel uid: got %q", rec.UID)
	}
}

func TestResolveNoMatchIsAbsence(t *testing.T) {
	k := NewKey()
	if _, ok := k.Resolve(catalog.Question{Title: "untracked"}); ok {
		t.Error("empty key must resolve nothing")
	}
}

func TestResolvePrefersQuestionUIDOverLaterTiers(t *testing.T) {
	k := keyFromJSON(t, `{
		"records_by_question_uid":{"go:1":{"type":"MCQ","answer":"A"}},
		"records_by_exam_uid":{"cse:2020:set1:main:q9":{"type":"MCQ","answer":"D"}}
	}`)
	q := catalog.Question{
		QuestionUID: "go:1",
		Link:        "https://gateoverflow.in/1/gate-cse-2020-question-9",
	}
	rec, _ := k.Resolve(q)
	if rec.Letter != "A" {
		t.Errorf("question-uid tier must win, got %+v", rec)
	}
}

func TestQuestionIdentity(t *testing.T) {
	// Full identity from a source link.
	id := QuestionIdentity(catalog.Question{
		Link: "https://gateoverflow.in/460817/gate-cse-2025-set-2-question-18",
	})
	if !id.HasIdentity {
		t.Error("link-derived identity expected")
	}
	if id.StorageUID != "go:460817" || id.QuestionUID != "go:460817" {
		t.Errorf("got %+v", id)
	}
	if id.ExamUID != "cse:2025:set2:main:q18" {
		t.Errorf("exam uid: got %q", id.ExamUID)
	}

	// Local-hash-only record: trackable but not joinable.
	id = QuestionIdentity(catalog.Question{Title: "A question with no provenance"})
	if id.HasIdentity {
		t.Error("local-only record must report no identity")
	}
	if id.Reason != "missing_join_keys" {
		t.Errorf("reason: got %q", id.Reason)
	}
	if id.StorageUID == "" {
		t.Error("storage uid must always exist")
	}

	// Volume+id_str alone is a join key.
	id = QuestionIdentity(catalog.Question{Title: "t", Volume: 1, IDStr: "2.3.4"})
	if !id.HasIdentity || id.AnswerUID != "v1:2.3.4" {
		t.Errorf("got %+v", id)
	}
}

func TestLoadKeyCounts(t *testing.T) {
	k := keyFromJSON(t,
		`{"records_by_uid":{"v1:1.1.1":{"uid":"v1:1.1.1","question_uid":"go:5","type":"MCQ","answer":"C"}}}`,
		`{"records_by_exam_uid":{"cse:2019:set1:main:q1":{"type":"NAT","answer":2}}}`,
		`{"question_uids":["go:9","go:10"]}`,
	)
	byQ, byA, byE, uns := k.Counts()
	if byQ != 1 || byA != 1 || byE != 1 || uns != 2 {
		t.Errorf("counts = (%d,%d,%d,%d)", byQ, byA, byE, uns)
	}
	// records_by_uid entries carrying question_uid index both ways.
	rec, ok := k.Resolve(catalog.Question{QuestionUID: "go:5"})
	if !ok || rec.Letter != "C" {
		t.Errorf("dual indexing: got (%+v, %v)", rec, ok)
	}
}

// The unsupported registry file carries a metadata-only side table next
// to question_uids (link/reason/exam_uid/type rows, type often empty,
// never an answer payload). Loading it must register the uids and skip
// the side table instead of failing.
func TestAddDatasetUnsupportedRegistryFile(t *testing.T) {
	k := keyFromJSON(t, `{
		"version": "v1",
		"stats": {"records": 2, "source_missing_rows": 2},
		"question_uids": ["go:111", "local:cafe0123"],
		"records_by_question_uid": {
			"go:111": {"link":"https://gateoverflow.in/111/x","reason":"missing","exam_uid":"","type":""},
			"local:cafe0123": {"link":"","reason":"no source id","exam_uid":"cse:2010:set1:main:q3","type":"MCQ"}
		}
	}`)

	if !k.IsUnsupported("go:111") || !k.IsUnsupported("local:cafe0123") {
		t.Error("question_uids must populate the registry")
	}
	byQ, _, _, uns := k.Counts()
	if byQ != 0 {
		t.Errorf("metadata rows must not become answer records, byQuestion = %d", byQ)
	}
	if uns != 2 {
		t.Errorf("unsupported = %d, want 2", uns)
	}
	if k.Skipped() != 2 {
		t.Errorf("skipped = %d, want 2", k.Skipped())
	}

	rec, ok := k.Resolve(catalog.Question{QuestionUID: "go:111"})
	if !ok || rec.Kind != KindUnsupported {
		t.Errorf("got (%+v, %v)", rec, ok)
	}
}

// Generators keep a NAT value as a string when float parsing fails and
// emit null answers on resolution rows; one such entry must not abort
// the rest of the file.
func TestAddDatasetSkipsMalformedRecords(t *testing.T) {
	k := keyFromJSON(t, `{"records_by_question_uid":{
		"go:1": {"type":"MCQ","answer":"A"},
		"go:2": {"type":"NAT","answer":"10 to 12"},
		"go:3": {"type":"MSQ"},
		"go:4": {"type":"SUBJECTIVE","answer":null},
		"go:5": {"type":"NAT","answer":3.5}
	}}`)

	byQ, _, _, _ := k.Counts()
	if byQ != 3 {
		t.Errorf("byQuestion = %d, want 3 decodable records", byQ)
	}
	if k.Skipped() != 2 {
		t.Errorf("skipped = %d, want 2", k.Skipped())
	}
	if _, ok := k.Resolve(catalog.Question{QuestionUID: "go:2"}); ok {
		t.Error("string-valued NAT row must be dropped, not served")
	}
	rec, ok := k.Resolve(catalog.Question{QuestionUID: "go:5"})
	if !ok || rec.Value != 3.5 {
		t.Errorf("good record after a bad one: got (%+v, %v)", rec, ok)
	}
}
