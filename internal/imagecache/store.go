// Package imagecache proxies the feed's remote image references through the
// storefront, caching fetched bytes on a filesystem. The filesystem is an
// afero.Fs so production uses the OS disk while tests run on an in-memory
// filesystem.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// maxImageBytes bounds a single cached image.
const maxImageBytes = 32 << 20

const defaultContentType = "application/octet-stream"

// Store fetches remote images once and serves them from the cache after.
type Store struct {
	fs         afero.Fs
	httpClient *http.Client
}

// New creates a Store over the given filesystem.
func New(fs afero.Fs) *Store {
	return &Store{
		fs:         fs,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Get returns the image bytes and content type for a remote URL, fetching
// and caching on a miss. A failed cache write is not fatal: the fetched
// bytes are still returned.
func (s *Store) Get(ctx context.Context, url string) ([]byte, string, error) {
	key := cacheKey(url)

	if data, ct, ok := s.read(key); ok {
		return data, ct, nil
	}

	data, ct, err := s.fetch(ctx, url)
	if err != nil {
		return nil, "", err
	}

	if err := s.write(key, data, ct); err != nil {
		return data, ct, fmt.Errorf("imagecache: write %s: %w", key, err)
	}
	return data, ct, nil
}

func (s *Store) read(key string) ([]byte, string, bool) {
	f, err := s.fs.OpenFile(key, os.O_RDONLY, 0)
	if err != nil {
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", false
	}

	ct := defaultContentType
	if raw, err := afero.ReadFile(s.fs, key+".ct"); err == nil && len(raw) > 0 {
		ct = string(raw)
	}
	return data, ct, true
}

func (s *Store) write(key string, data []byte, contentType string) error {
	if err := s.fs.MkdirAll(filepath.Dir(key), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, key, data, 0644); err != nil {
		return err
	}
	// Content type rides in a sidecar so a cache hit can answer without
	// sniffing.
	return afero.WriteFile(s.fs, key+".ct", []byte(contentType), 0644)
}

func (s *Store) fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("imagecache: build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("imagecache: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("imagecache: fetch %s: upstream status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("imagecache: read %s: %w", url, err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = defaultContentType
	}
	return data, ct, nil
}

// cacheKey shards cached files into 256 directories by URL hash.
func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	h := hex.EncodeToString(sum[:])
	return filepath.Join(h[:2], h)
}
