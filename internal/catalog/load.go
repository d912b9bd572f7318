package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("catalog source not configured")
	ErrFetchFailed   = errors.New("catalog fetch failed")
	ErrDecodeFailed  = errors.New("catalog decode failed")
)

// Header names tried in order; the first non-empty cell wins.
var (
	nameColumns  = []string{"materiais", "material", "nome"}
	priceColumns = []string{"preco", "preço", "preco (r$)", "preço (r$)"}
)

// LoadReport describes one successful load.
type LoadReport struct {
	Source     string
	SnapshotID string
	Rows       int
	Accepted   int
	Unique     int
	Duration   time.Duration
}

// Load fetches sourceURL, rebuilds the catalog from it and swaps the result
// in. Published-page URLs are rewritten to their CSV export first. On any
// error the current snapshot is kept.
func (c *Catalog) Load(ctx context.Context, sourceURL string) (LoadReport, error) {
	start := time.Now()
	src := ToCSVURL(strings.TrimSpace(sourceURL))
	rep := LoadReport{Source: src}

	if src == "" {
		c.metrics.observeReload(outcomeNotConfigured)
		c.log.Warn("catalog source not configured, set MATERIAIS_URL")
		return rep, ErrNotConfigured
	}

	doc, err := c.fetcher.Fetch(ctx, src)
	if err != nil {
		c.metrics.observeReload(outcomeFetchFailed)
		c.log.Error("catalog fetch failed",
			zap.String("source", src),
			zap.Int("kept_entries", c.Size()),
			zap.Error(err),
		)
		return rep, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	table, err := DecodeTable(doc)
	if err != nil {
		c.metrics.observeReload(outcomeDecodeFailed)
		c.log.Error("catalog decode failed",
			zap.String("source", src),
			zap.String("content_type", doc.ContentType),
			zap.Int("bytes", len(doc.Body)),
			zap.Error(err),
		)
		return rep, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	entries, rows := ReadEntries(table)
	snap := NewSnapshot(src, entries)
	c.Replace(snap)

	rep.SnapshotID = snap.ID
	rep.Rows = rows
	rep.Accepted = len(entries)
	rep.Unique = snap.Len()
	rep.Duration = time.Since(start)

	c.metrics.observeReload(outcomeOK)
	c.metrics.observeSkipped(rep.Rows - rep.Accepted)
	c.log.Info("catalog loaded",
		zap.String("source", src),
		zap.String("snapshot_id", rep.SnapshotID),
		zap.Int("rows", rep.Rows),
		zap.Int("accepted", rep.Accepted),
		zap.Int("unique", rep.Unique),
		zap.Duration("duration", rep.Duration),
	)
	return rep, nil
}

// ReadEntries turns sheet rows into entries, skipping rows without a name,
// without a usable non-negative price, or whose name normalizes to nothing.
// It returns the accepted entries in sheet order and the number of rows seen.
func ReadEntries(t Table) ([]Entry, int) {
	nameCols := columns(t, nameColumns)
	priceCols := columns(t, priceColumns)

	entries := make([]Entry, 0, len(t.Rows))
	for _, row := range t.Rows {
		name := strings.TrimSpace(firstNonEmpty(row, nameCols))
		if name == "" {
			continue
		}

		price, ok := ParsePrice(firstNonEmpty(row, priceCols))
		if !ok || price < 0 {
			continue
		}

		if Normalize(name) == "" {
			continue
		}
		entries = append(entries, Entry{Name: name, Price: price})
	}
	return entries, len(t.Rows)
}

func columns(t Table, names []string) []int {
	out := make([]int, 0, len(names))
	for _, n := range names {
		if i, ok := t.Column(n); ok {
			out = append(out, i)
		}
	}
	return out
}

func firstNonEmpty(row []string, cols []int) string {
	for _, c := range cols {
		if v := Cell(row, c); v != "" {
			return v
		}
	}
	return ""
}
