// Package streams reads Ubuntu cloud image simplestreams metadata and answers
// which AMI is current for a region, release and architecture.
package streams

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultURL = "https://cloud-images.ubuntu.com/releases/streams/v1/com.ubuntu.cloud:released:aws.json"

	DefaultVirt      = "hvm"
	DefaultRootStore = "ssd"

	DefaultMaxElapsedTime = 2 * time.Minute
	DefaultTimeout        = 30 * time.Second
)

var ErrImageNotFound = errors.New("no image in streams")

type item struct {
	Region    string `json:"crsn"`
	ID        string `json:"id"`
	Virt      string `json:"virt"`
	RootStore string `json:"root_store"`
}

type version struct {
	Items map[string]item `json:"items"`
}

type product struct {
	Version  string             `json:"version"`
	Arch     string             `json:"arch"`
	Release  string             `json:"release"`
	Versions map[string]version `json:"versions"`
}

type document struct {
	Products map[string]product `json:"products"`
}

type indexKey struct {
	region, release, arch string
}

// Client fetches the streams document once and serves lookups from memory.
type Client struct {
	URL       string
	Virt      string
	RootStore string

	httpClient     *http.Client
	maxElapsedTime time.Duration

	mu    sync.Mutex
	index map[indexKey]string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(s *Client) { s.httpClient = c }
}

func WithMaxElapsedTime(d time.Duration) Option {
	return func(s *Client) { s.maxElapsedTime = d }
}

func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		URL:            url,
		Virt:           DefaultVirt,
		RootStore:      DefaultRootStore,
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		maxElapsedTime: DefaultMaxElapsedTime,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImageID implements reconcile.ImageLookup. The newest serial wins.
func (c *Client) ImageID(ctx context.Context, region, release, arch string) (string, error) {
	index, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	id, ok := index[indexKey{region: region, release: release, arch: arch}]
	if !ok {
		return "", fmt.Errorf("%w for %s %s in %s", ErrImageNotFound, release, arch, region)
	}
	return id, nil
}

func (c *Client) load(ctx context.Context) (map[indexKey]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index != nil {
		return c.index, nil
	}

	doc, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.index = c.buildIndex(doc)
	logger.Get().Debugf("Loaded %d streams entries from %s", len(c.index), c.URL)
	return c.index, nil
}

func (c *Client) fetch(ctx context.Context) (*document, error) {
	l := logger.Get()
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxElapsedTime
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second

	var doc document
	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			l.Debugf("Failed to fetch %s: %v", c.URL, err)
			return fmt.Errorf("failed to fetch streams: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("streams returned %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("streams returned %s", resp.Status))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read streams body: %w", err)
		}
		if err := json.Unmarshal(body, &doc); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode streams: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) buildIndex(doc *document) map[indexKey]string {
	index := make(map[indexKey]string)
	for _, p := range doc.Products {
		serials := make([]string, 0, len(p.Versions))
		for serial := range p.Versions {
			serials = append(serials, serial)
		}
		// Oldest first so newer serials overwrite.
		sort.Strings(serials)
		for _, serial := range serials {
			for _, it := range p.Versions[serial].Items {
				if it.ID == "" || it.Virt != c.Virt || it.RootStore != c.RootStore {
					continue
				}
				index[indexKey{region: it.Region, release: p.Version, arch: p.Arch}] = it.ID
			}
		}
	}
	return index
}
