package identity

import "testing"

func TestSourceID(t *testing.T) {
	tests := []struct {
		link string
		want string
		ok   bool
	}{
		{"https://gateoverflow.in/460817/gate-cse-2025-set-2-question-18", "460817", true},
		{"http://www.gateoverflow.in/399311/some-slug", "399311", true},
		{"gateoverflow.in/1234", "1234", true},
		{"/460817/gate-cse-2025-set-2-question-18", "460817", true},
		{"/17024", "17024", true},
		{"https://gateoverflow.in/blog/17024/post", "", false},
		{"https://gateoverflow.in/tag/algorithms", "", false},
		{"https://gateoverflow.in/questions/recent", "", false},
		{"https://example.com/460817/slug", "", false},
		{"", "", false},
		{"not a link", "", false},
	}
	for _, tc := range tests {
		got, ok := SourceID(tc.link)
		if got != tc.want || ok != tc.ok {
			t.Errorf("SourceID(%q) = (%q, %v), want (%q, %v)", tc.link, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct{ in, want string }{
		{"078", "78"},
		{"78", "78"},
		{"Q.01-a", "q.1-a"},
		{"18", "18"},
		{"3.02", "3.2"},
		{"a_b", "a-b"},
		{"a–b—c", "a-b-c"},
		{"  12  ", "12"},
		{"q--7", "q-7"},
		{"-.7.-", "7"},
		{"x%y", "x-y"},
		{"000", "0"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := NormalizeToken(tc.in); got != tc.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExamRefFromLink(t *testing.T) {
	ref, ok := ExamRefFromLink("https://gateoverflow.in/460817/gate-cse-2025-set-2-question-18", "")
	if !ok {
		t.Fatal("expected a match")
	}
	want := ExamRef{Year: "2025", SetNo: "2", Section: SectionMain, Token: "18"}
	if ref != want {
		t.Errorf("got %+v, want %+v", ref, want)
	}

	// GA marker.
	ref, ok = ExamRefFromLink("/123/gate-cse-2021-set-1-ga-question-3", "")
	if !ok || ref.Section != SectionGA || ref.Token != "3" {
		t.Errorf("ga link: got %+v ok=%v", ref, ok)
	}

	// Set falls back to the year tag only when the years agree.
	ref, _ = ExamRefFromLink("/9/gate-cse-2023-question-07", "gatecse-2023-set2")
	if ref.SetNo != "2" || ref.Token != "7" {
		t.Errorf("year-tag set fallback: got %+v", ref)
	}
	ref, _ = ExamRefFromLink("/9/gate-cse-2023-question-7", "gatecse-2022-set2")
	if ref.SetNo != "1" {
		t.Errorf("mismatched tag year must not donate its set, got %+v", ref)
	}

	if _, ok := ExamRefFromLink("https://gateoverflow.in/460817/unrelated-slug", ""); ok {
		t.Error("unrelated slug should not match")
	}
	if _, ok := ExamRefFromLink("", "gatecse-2023"); ok {
		t.Error("empty link should not match")
	}
}

func TestExamRefFromTitle(t *testing.T) {
	ref, ok := ExamRefFromTitle("GATE CSE 2008 | Question: 78", "")
	if !ok {
		t.Fatal("expected a match")
	}
	want := ExamRef{Year: "2008", SetNo: "1", Section: SectionMain, Token: "78"}
	if ref != want {
		t.Errorf("got %+v, want %+v", ref, want)
	}

	ref, ok = ExamRefFromTitle("GATE CSE 2023 Set 2 | GA Question: 5", "")
	if !ok || ref.Section != SectionGA || ref.SetNo != "2" || ref.Token != "5" {
		t.Errorf("ga title: got %+v ok=%v", ref, ok)
	}

	// Year from the tag when the title has none.
	ref, ok = ExamRefFromTitle("Question: 12", "gatecse-2014-set3")
	if !ok || ref.Year != "2014" || ref.SetNo != "3" {
		t.Errorf("tag-year fallback: got %+v ok=%v", ref, ok)
	}

	// A known year without a question number is still no identity.
	if _, ok := ExamRefFromTitle("GATE CSE 2008 recap notes", ""); ok {
		t.Error("title without a question number must not match")
	}
	if _, ok := ExamRefFromTitle("Recursion basics", ""); ok {
		t.Error("title without year or tag must not match")
	}
	if _, ok := ExamRefFromTitle("", "gatecse-2014"); ok {
		t.Error("empty title must not match")
	}
}

func TestExamRefIdempotent(t *testing.T) {
	link := "https://gateoverflow.in/460817/gate-cse-2025-set-2-question-18"
	a, _ := ExamRefFromLink(link, "gatecse-2025-set2")
	b, _ := ExamRefFromLink(link, "gatecse-2025-set2")
	if a != b {
		t.Errorf("extraction not idempotent: %+v vs %+v", a, b)
	}
}
