package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// Source supplies one candidate question dataset. Sources are tried in
// preference order by Load; a source that errors or yields nothing is
// skipped, not fatal on its own.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Question, error)
}

// FileSource reads a JSON question file from a base data directory.
type FileSource struct {
	base string
	name string
}

func NewFileSource(base, name string) *FileSource {
	if base == "" {
		base = "./data"
	}
	return &FileSource{base: base, name: name}
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) Load(_ context.Context) ([]Question, error) {
	raw, err := os.ReadFile(filepath.Join(s.base, filepath.Clean(s.name)))
	if err != nil {
		return nil, err
	}
	return decodeQuestions(raw, s.name)
}

// HTTPSource fetches a JSON question file over HTTP. Used when the data
// assets are hosted next to the frontend rather than on local disk.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{url: url, client: http.DefaultClient}
}

func (s *HTTPSource) Name() string { return s.url }

func (s *HTTPSource) Load(ctx context.Context) ([]Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", s.url, resp.StatusCode)
	}
	var entries []Question
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.url, err)
	}
	return entries, nil
}

func decodeQuestions(raw []byte, name string) ([]Question, error) {
	var entries []Question
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return entries, nil
}
