package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNoSource means the loader was given an empty source string
var ErrNoSource = errors.New("document: no source configured")

// maxDocumentSize bounds remote documents; portfolio data is tiny
const maxDocumentSize = 4 << 20

// httpClient is shared across loads; the page performs exactly one
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load reads and decodes the document from a file path or an http(s) URL.
// A load happens exactly once per run: there is no retry and no cache.
func Load(ctx context.Context, source string) (*Document, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrNoSource
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", source, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode document %q: %w", source, err)
	}
	return doc, nil
}

// fetch performs the single HTTP request for a remote document
func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}
