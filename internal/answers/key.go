package answers

import (
	"encoding/json"
	"fmt"
	"os"
)

// Key is the loaded answer dataset: three independently keyed maps plus
// the unsupported-uid registry. Immutable once Load returns.
type Key struct {
	byQuestionUID map[string]Record
	byAnswerUID   map[string]Record
	byExamUID     map[string]Record
	unsupported   map[string]struct{}
	skipped       int
}

func NewKey() *Key {
	return &Key{
		byQuestionUID: map[string]Record{},
		byAnswerUID:   map[string]Record{},
		byExamUID:     map[string]Record{},
		unsupported:   map[string]struct{}{},
	}
}

// dataset mirrors the generated answer-db payloads. A file carries one
// (or more) of these tables; the rest stay empty. Record tables stay
// raw here so one undecodable entry cannot poison the whole file.
type dataset struct {
	RecordsByUID         map[string]json.RawMessage `json:"records_by_uid,omitempty"`
	RecordsByQuestionUID map[string]json.RawMessage `json:"records_by_question_uid,omitempty"`
	RecordsByExamUID     map[string]json.RawMessage `json:"records_by_exam_uid,omitempty"`
	UnsupportedUIDs      []string                   `json:"question_uids,omitempty"`
}

// AddDataset merges one payload into the key. Records in records_by_uid
// that carry a question_uid are indexed under both keys. Entries that do
// not decode as records are skipped and tallied, not fatal: the upstream
// generators knowingly emit imperfect rows (unparsed NAT values kept as
// strings, metadata-only side tables next to question_uids lists).
func (k *Key) AddDataset(raw []byte) error {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return err
	}
	for uid, raw := range ds.RecordsByUID {
		rec, ok := k.decodeRecord(raw)
		if !ok {
			continue
		}
		if rec.UID == "" {
			rec.UID = uid
		}
		k.byAnswerUID[uid] = rec
		if rec.QuestionUID != "" {
			k.byQuestionUID[rec.QuestionUID] = rec
		}
	}
	for uid, raw := range ds.RecordsByQuestionUID {
		rec, ok := k.decodeRecord(raw)
		if !ok {
			continue
		}
		if rec.QuestionUID == "" {
			rec.QuestionUID = uid
		}
		k.byQuestionUID[uid] = rec
	}
	for uid, raw := range ds.RecordsByExamUID {
		rec, ok := k.decodeRecord(raw)
		if !ok {
			continue
		}
		k.byExamUID[uid] = rec
	}
	k.MarkUnsupported(ds.UnsupportedUIDs...)
	return nil
}

func (k *Key) decodeRecord(raw json.RawMessage) (Record, bool) {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		k.skipped++
		return Record{}, false
	}
	return rec, true
}

// MarkUnsupported registers question uids whose answers cannot be
// served. The registry overrides real matches; see Resolve.
func (k *Key) MarkUnsupported(questionUIDs ...string) {
	for _, uid := range questionUIDs {
		if uid != "" {
			k.unsupported[uid] = struct{}{}
		}
	}
}

// IsUnsupported reports registry membership for a question uid.
func (k *Key) IsUnsupported(questionUID string) bool {
	_, ok := k.unsupported[questionUID]
	return ok
}

// Counts reports table sizes for diagnostics and the validate CLI.
func (k *Key) Counts() (byQuestion, byAnswer, byExam, unsupported int) {
	return len(k.byQuestionUID), len(k.byAnswerUID), len(k.byExamUID), len(k.unsupported)
}

// Skipped reports how many dataset entries failed to decode and were
// dropped across all AddDataset calls.
func (k *Key) Skipped() int { return k.skipped }

// Load reads the answer datasets from disk. Empty paths are skipped so
// deployments can ship any subset of the three files.
func Load(paths ...string) (*Key, error) {
	k := NewKey()
	for _, path := range paths {
		if path == "" {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("answer dataset %s: %w", path, err)
		}
		if err := k.AddDataset(raw); err != nil {
			return nil, fmt.Errorf("answer dataset %s: %w", path, err)
		}
	}
	return k, nil
}
