package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSources is returned when every candidate source is unreachable or
// empty. Terminal for the session: callers surface it once and do not
// retry.
var ErrNoSources = errors.New("no usable question source")

// Load ingests the first candidate source (in preference order) whose
// entries all carry a native join identity; if none reaches full
// coverage, the source with the highest observed coverage wins.
func Load(ctx context.Context, sources ...Source) (*Catalog, error) {
	var (
		best         []Question
		bestName     string
		bestCoverage = -1.0
		loadErrs     []error
	)
	for _, src := range sources {
		entries, err := src.Load(ctx)
		if err != nil {
			loadErrs = append(loadErrs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if len(entries) == 0 {
			loadErrs = append(loadErrs, fmt.Errorf("%s: empty dataset", src.Name()))
			continue
		}
		cov := joinCoverage(entries)
		if cov == 1.0 {
			return build(src.Name(), entries), nil
		}
		if cov > bestCoverage {
			best, bestName, bestCoverage = entries, src.Name(), cov
		}
	}
	if best == nil {
		if joined := errors.Join(loadErrs...); joined != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoSources, joined)
		}
		return nil, ErrNoSources
	}
	return build(bestName, best), nil
}

// joinCoverage is the fraction of entries that can be joined to an
// answer record without falling back to a content hash.
func joinCoverage(entries []Question) float64 {
	if len(entries) == 0 {
		return 0
	}
	joinable := 0
	for _, q := range entries {
		if hasJoinIdentity(q) {
			joinable++
		}
	}
	return float64(joinable) / float64(len(entries))
}

func build(source string, entries []Question) *Catalog {
	questions := make([]Question, 0, len(entries))
	for _, raw := range entries {
		q := normalize(raw)
		if q.Title == placeholderTitle {
			continue
		}
		questions = append(questions, q)
	}
	return newCatalog(source, questions)
}
