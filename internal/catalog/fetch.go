package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSourceBadStatus   = errors.New("source bad status")
	ErrSourceTooLarge    = errors.New("source too large")
)

const (
	defaultFetchTimeout = 30 * time.Second
	maxSourceBytes      = 32 << 20
)

// Document is a fetched spreadsheet export.
type Document struct {
	Body        []byte
	ContentType string
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: timeout},
		MaxBytes: maxSourceBytes,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, err
	}
	req.Header.Set("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;q=0.9, */*;q=0.1")

	resp, err := f.Client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return Document{}, fmt.Errorf("%w: status=%d", ErrSourceBadStatus, resp.StatusCode)
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = maxSourceBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if int64(len(body)) > limit {
		return Document{}, fmt.Errorf("%w: more than %d bytes", ErrSourceTooLarge, limit)
	}

	return Document{Body: body, ContentType: resp.Header.Get("Content-Type")}, nil
}
