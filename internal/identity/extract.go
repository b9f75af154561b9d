// Package identity derives stable identifiers from question and answer
// records. Sources are inconsistent (native numeric ids, link slugs,
// human titles), so every extractor here is total: malformed input yields
// an absent result, never an error.
package identity

import (
	"regexp"
	"strings"
)

const (
	SectionMain = "main"
	SectionGA   = "general-aptitude"
)

// ExamRef locates a question within a specific exam sitting, independent
// of any source's internal ids.
type ExamRef struct {
	Year    string
	SetNo   string
	Section string // SectionMain or SectionGA
	Token   string // normalized question token
}

var (
	// The numeric id must be the first path segment: /blog/17024/post is
	// not an id-bearing link, /17024/some-slug is.
	sourceIDPattern = regexp.MustCompile(`^(?:(?:https?://)?(?:www\.)?gateoverflow\.in)?/(\d+)(?:[/?#]|$)`)

	linkSlugPattern = regexp.MustCompile(`(?i)gate-cse-(\d{4})(?:-set-(\d+))?-(ga-)?question-([^/?#]+)`)
	yearTagPattern  = regexp.MustCompile(`(?i)gatecse-(\d{4})(?:-set(\d+))?`)

	titleYearPattern     = regexp.MustCompile(`(?i)GATE\s+CSE\s+(\d{4})(?:\s+Set\s*(\d+))?`)
	titleQuestionPattern = regexp.MustCompile(`(?i)(GA\s+)?Question\s*[: ]\s*([0-9]+(?:\.[0-9]+)?(?:-[A-Za-z0-9]+)*)`)
)

// SourceID parses a gateoverflow link (absolute or root-relative) for its
// leading numeric id segment.
func SourceID(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}
	m := sourceIDPattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExamRefFromLink matches the link's final path segment against the
// gate-cse slug convention. A set number missing from the link is taken
// from the companion year tag, but only when the tag's year agrees with
// the link's year.
func ExamRefFromLink(link, yearTag string) (ExamRef, bool) {
	raw := strings.TrimRight(strings.TrimSpace(link), "/")
	if raw == "" {
		return ExamRef{}, false
	}
	slug := raw
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		slug = raw[i+1:]
	}
	m := linkSlugPattern.FindStringSubmatch(slug)
	if m == nil {
		return ExamRef{}, false
	}
	year, setNo, gaMark, rawToken := m[1], m[2], m[3], m[4]

	tagYear, tagSet := yearTagParts(yearTag)
	if setNo == "" && tagYear != "" && tagYear == year {
		setNo = tagSet
	}
	token := NormalizeToken(rawToken)
	if token == "" {
		return ExamRef{}, false
	}
	section := SectionMain
	if gaMark != "" {
		section = SectionGA
	}
	return ExamRef{Year: year, SetNo: normalizeSetNo(setNo), Section: section, Token: token}, true
}

// ExamRefFromTitle parses a human-readable title. The year may come from
// the title or from the year tag; a title without an identifiable
// question number carries no exam identity at all.
func ExamRefFromTitle(title, yearTag string) (ExamRef, bool) {
	raw := strings.TrimSpace(title)
	if raw == "" {
		return ExamRef{}, false
	}

	tagYear, tagSet := yearTagParts(yearTag)
	var year, setNo string
	if m := titleYearPattern.FindStringSubmatch(raw); m != nil {
		year = m[1]
		setNo = m[2]
		if setNo == "" {
			setNo = tagSet
		}
	} else if tagYear != "" {
		year = tagYear
		setNo = tagSet
	} else {
		return ExamRef{}, false
	}

	qm := titleQuestionPattern.FindStringSubmatch(raw)
	if qm == nil {
		return ExamRef{}, false
	}
	token := NormalizeToken(qm[2])
	if token == "" {
		return ExamRef{}, false
	}
	section := SectionMain
	if qm[1] != "" {
		section = SectionGA
	}
	return ExamRef{Year: year, SetNo: normalizeSetNo(setNo), Section: section, Token: token}, true
}

// ParseYearTag parses a year tag like "gatecse-2023-set1". The set
// defaults to "1" when the tag carries none.
func ParseYearTag(tag string) (year, setNo string, ok bool) {
	year, setNo = yearTagParts(tag)
	return year, setNo, year != ""
}

// yearTagParts parses a year tag like "gatecse-2023-set1". Returns the
// empty year when the tag does not match; the set defaults to "1".
func yearTagParts(tag string) (year, setNo string) {
	m := yearTagPattern.FindStringSubmatch(strings.TrimSpace(tag))
	if m == nil {
		return "", "1"
	}
	return m[1], normalizeSetNo(m[2])
}

var (
	nonTokenRunPattern = regexp.MustCompile(`[^a-z0-9.\-]+`)
	hyphenRunPattern   = regexp.MustCompile(`-{2,}`)
)

// NormalizeToken canonicalizes a question token: lowercase, unified
// separators, and leading zeros stripped per numeric segment, so that
// "078" and "78" (or "Q.01-a" and "q.1-a") identify the same question.
func NormalizeToken(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return ""
	}
	token = strings.NewReplacer("_", "-", "–", "-", "—", "-").Replace(token)
	token = nonTokenRunPattern.ReplaceAllString(token, "-")
	token = hyphenRunPattern.ReplaceAllString(token, "-")
	token = strings.Trim(token, "-.")

	var b strings.Builder
	start := 0
	flush := func(end int) {
		seg := token[start:end]
		if seg != "" {
			b.WriteString(stripLeadingZeros(seg))
		}
	}
	for i := 0; i < len(token); i++ {
		if token[i] == '.' || token[i] == '-' {
			flush(i)
			b.WriteByte(token[i])
			start = i + 1
		}
	}
	flush(len(token))
	return strings.Trim(b.String(), "-.")
}

// stripLeadingZeros reduces an all-digit segment to its integer form;
// non-numeric segments pass through untouched.
func stripLeadingZeros(seg string) string {
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return seg
		}
	}
	trimmed := strings.TrimLeft(seg, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
