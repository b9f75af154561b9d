package catalog

import (
	"sort"
	"strings"
)

// Catalog is the immutable-after-load question set plus its lookup
// indexes. Construct one through Load; resolution and evaluation take it
// by handle instead of reading process-wide state.
type Catalog struct {
	source    string
	questions []Question
	byUID     map[string]Question
	tagCounts map[string]int
	tags      []string
}

func newCatalog(source string, questions []Question) *Catalog {
	c := &Catalog{
		source:    source,
		questions: questions,
		byUID:     make(map[string]Question, len(questions)),
		tagCounts: map[string]int{},
	}
	for _, q := range questions {
		c.byUID[q.QuestionUID] = q
		for _, tag := range q.Tags {
			c.tagCounts[tag]++
		}
	}
	c.tags = make([]string, 0, len(c.tagCounts))
	for tag := range c.tagCounts {
		c.tags = append(c.tags, tag)
	}
	sort.Strings(c.tags)
	return c
}

// SourceName is the name of the dataset that won source selection.
func (c *Catalog) SourceName() string { return c.source }

func (c *Catalog) Len() int { return len(c.questions) }

// Questions returns the full visible set in source order.
func (c *Catalog) Questions() []Question { return c.questions }

// Get looks a question up by its canonical uid.
func (c *Catalog) Get(uid string) (Question, bool) {
	q, ok := c.byUID[uid]
	return q, ok
}

// TagCount pairs a distinct tag with its occurrence count.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tags returns the distinct tags in sorted order with counts.
func (c *Catalog) Tags() []TagCount {
	out := make([]TagCount, 0, len(c.tags))
	for _, tag := range c.tags {
		out = append(out, TagCount{Name: tag, Count: c.tagCounts[tag]})
	}
	return out
}

// Filter selects questions for the listing surface.
type Filter struct {
	Tag    string
	Year   string
	Topic  string
	Query  string // case-insensitive title substring
	Limit  int
	Offset int
}

// Select applies a filter. Limit <= 0 means no limit.
func (c *Catalog) Select(f Filter) []Question {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	matched := make([]Question, 0)
	for _, q := range c.questions {
		if f.Tag != "" && !hasTag(q, f.Tag) {
			continue
		}
		if f.Year != "" && q.Year() != f.Year {
			continue
		}
		if f.Topic != "" && !TopicMatches(f.Topic, q.Tags) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(q.Title), query) {
			continue
		}
		matched = append(matched, q)
	}
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []Question{}
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched
}

func hasTag(q Question, tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
