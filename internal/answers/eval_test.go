package answers

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEvaluateMCQ(t *testing.T) {
	rec := Record{Kind: KindMCQ, Letter: "B"}
	tests := []struct {
		letter  string
		correct bool
		status  Status
	}{
		{"B", true, StatusOK},
		{"b", true, StatusOK},
		{" b ", true, StatusOK},
		{"A", false, StatusOK},
		{"", false, StatusInvalidInput},
		{"   ", false, StatusInvalidInput},
	}
	for _, tc := range tests {
		res, err := Evaluate(rec, Submission{Letter: tc.letter})
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", tc.letter, err)
		}
		if res.Correct != tc.correct || res.Status != tc.status {
			t.Errorf("Evaluate(%q) = %+v, want correct=%v status=%s", tc.letter, res, tc.correct, tc.status)
		}
	}
}

func TestEvaluateMSQ(t *testing.T) {
	rec := Record{Kind: KindMSQ, Letters: []string{"A", "C"}}
	tests := []struct {
		letters []string
		correct bool
		status  Status
	}{
		{[]string{"A", "C"}, true, StatusOK},
		{[]string{"C", "A"}, true, StatusOK},
		{[]string{"a", "c"}, true, StatusOK},
		{[]string{"A", "A", "C"}, true, StatusOK}, // duplicates collapse
		{[]string{"A"}, false, StatusOK},
		{[]string{"A", "C", "D"}, false, StatusOK},
		{nil, false, StatusInvalidInput},
		{[]string{}, false, StatusInvalidInput},
		{[]string{" ", ""}, false, StatusInvalidInput},
	}
	for _, tc := range tests {
		res, err := Evaluate(rec, Submission{Letters: tc.letters})
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", tc.letters, err)
		}
		if res.Correct != tc.correct || res.Status != tc.status {
			t.Errorf("Evaluate(%v) = %+v, want correct=%v status=%s", tc.letters, res, tc.correct, tc.status)
		}
	}
}

func TestEvaluateNAT(t *testing.T) {
	point := Record{Kind: KindNAT, Value: 5, Tolerance: Tolerance{Abs: 0.5}}
	exact := Record{Kind: KindNAT, Value: 5}
	ranged := Record{Kind: KindNAT, Min: 1.5, Max: 2.5, IsRange: true}
	relative := Record{Kind: KindNAT, Value: 100, Tolerance: Tolerance{Rel: 0.01}}

	tests := []struct {
		name    string
		rec     Record
		value   string
		correct bool
		status  Status
	}{
		{"within tolerance", point, "5.3", true, StatusOK},
		{"lower bound", point, "4.5", true, StatusOK},
		{"upper bound", point, "5.5", true, StatusOK},
		{"outside tolerance", point, "6", false, StatusOK},
		{"garbage", point, "abc", false, StatusInvalidInput},
		{"empty", point, "", false, StatusInvalidInput},
		{"exact match default tolerance", exact, "5", true, StatusOK},
		{"exact miss default tolerance", exact, "5.0001", false, StatusOK},
		{"inside range", ranged, "2", true, StatusOK},
		{"range inclusive min", ranged, "1.5", true, StatusOK},
		{"range inclusive max", ranged, "2.5", true, StatusOK},
		{"outside range", ranged, "2.6", false, StatusOK},
		{"within relative tolerance", relative, "100.9", true, StatusOK},
		{"outside relative tolerance", relative, "101.5", false, StatusOK},
		{"whitespace ok", point, " 5.0 ", true, StatusOK},
	}
	for _, tc := range tests {
		res, err := Evaluate(tc.rec, Submission{Value: tc.value})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if res.Correct != tc.correct || res.Status != tc.status {
			t.Errorf("%s: got %+v, want correct=%v status=%s", tc.name, res, tc.correct, tc.status)
		}
	}
}

func TestEvaluateRejectsUnevaluableKinds(t *testing.T) {
	for _, kind := range []Kind{KindUnsupported, KindSubjective, KindAmbiguous, Kind("")} {
		_, err := Evaluate(Record{Kind: kind}, Submission{Letter: "A"})
		var notEval ErrNotEvaluable
		if !errors.As(err, &notEval) {
			t.Errorf("kind %q: want ErrNotEvaluable, got %v", kind, err)
		}
	}
}

func TestEvaluateRetainsSubmission(t *testing.T) {
	res, err := Evaluate(Record{Kind: KindNAT, Value: 1}, Submission{Value: "not-a-number"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Submission.Value != "not-a-number" {
		t.Errorf("submission not retained: %+v", res)
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	payloads := []string{
		`{"uid":"v1:1.2.3","type":"MCQ","answer":"A"}`,
		`{"uid":"v1:1.2.4","type":"MSQ","answer":["A","D"]}`,
		`{"uid":"v1:1.2.5","type":"NAT","answer":3.14,"tolerance":{"abs":0.01}}`,
		`{"uid":"v1:1.2.6","type":"NAT","answer":{"min":1,"max":2}}`,
	}
	for _, p := range payloads {
		var rec Record
		if err := json.Unmarshal([]byte(p), &rec); err != nil {
			t.Fatalf("unmarshal %s: %v", p, err)
		}
		out, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal %s: %v", p, err)
		}
		var back Record
		if err := json.Unmarshal(out, &back); err != nil {
			t.Fatalf("re-unmarshal %s: %v", out, err)
		}
		if back.Kind != rec.Kind || back.Letter != rec.Letter || back.Value != rec.Value || back.IsRange != rec.IsRange {
			t.Errorf("round trip changed record: %+v vs %+v", rec, back)
		}
	}

	if err := json.Unmarshal([]byte(`{"uid":"x","type":"WAT","answer":1}`), &Record{}); err == nil {
		t.Error("unknown type must fail to decode")
	}
}
