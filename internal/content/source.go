package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Source fetches raw content documents by slash-separated relative path.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
	// List returns the paths matching a doublestar pattern, sorted.
	List(ctx context.Context, pattern string) ([]string, error)
}

// DirSource serves content from a directory tree.
type DirSource struct {
	fsys fs.FS
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir)}
}

// NewFSSource creates a DirSource over an arbitrary fs.FS.
func NewFSSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

func (s *DirSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, path)
}

func (s *DirSource) List(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := doublestar.Glob(s.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// maxDocumentSize bounds a single fetched document.
const maxDocumentSize = 16 << 20

var errDocumentTooLarge = errors.New("document exceeds size limit")

// HTTPSource fetches content from a base URL.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client gets a 30s timeout default.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := s.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("GET %s: %w (%d bytes)", url, errDocumentTooLarge, maxDocumentSize)
	}
	return data, nil
}

// List is not supported over HTTP; it always returns no paths.
func (s *HTTPSource) List(ctx context.Context, pattern string) ([]string, error) {
	return nil, nil
}
