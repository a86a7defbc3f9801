// Package loader seeds the record store from a JSON array of insight
// documents, replacing whatever the store held before.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"insightboard/internal/insight/cache"
	"insightboard/internal/insight/metrics"
	"insightboard/internal/insight/models"
	"insightboard/pkg/platform/sentinel"
)

// Target is the write side of the record store.
type Target interface {
	Replace(ctx context.Context, records []models.Record) error
}

// Loader decodes a source and replaces the store contents with it.
type Loader struct {
	target  Target
	cache   cache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithCache clears cached views after every successful load.
func WithCache(c cache.Cache) Option {
	return func(l *Loader) {
		l.cache = c
	}
}

// WithMetrics records the loaded record count.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a Loader writing to target.
func New(target Target, opts ...Option) *Loader {
	l := &Loader{target: target, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads src and replaces the store contents with its records. The
// store is left untouched when the source is unreadable or invalid.
func (l *Loader) Load(ctx context.Context, src Source) (int, error) {
	start := time.Now()

	rc, err := src.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	records, err := Decode(rc)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", src.Name(), err)
	}

	if err := l.target.Replace(ctx, records); err != nil {
		return 0, fmt.Errorf("replace records: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.ClearPrefix(ctx, cache.KeyPrefix); err != nil {
			l.logger.WarnContext(ctx, "failed to clear view cache", "error", err)
		}
	}
	l.metrics.SetRecordsLoaded(len(records))

	l.logger.InfoContext(ctx, fmt.Sprintf("loaded %d records", len(records)),
		"source", src.Name(),
		"count", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return len(records), nil
}

// Decode parses a top-level JSON array of objects. Anything else is
// sentinel.ErrInvalidSource; an empty array is sentinel.ErrEmptySource.
func Decode(r io.Reader) ([]models.Record, error) {
	br := bufio.NewReader(r)
	if first, err := firstNonSpace(br); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", sentinel.ErrInvalidSource)
		}
		return nil, err
	} else if first != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", sentinel.ErrInvalidSource)
	}

	var raw []json.RawMessage
	dec := json.NewDecoder(br)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrInvalidSource, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the array", sentinel.ErrInvalidSource)
	}
	if len(raw) == 0 {
		return nil, sentinel.ErrEmptySource
	}

	records := make([]models.Record, 0, len(raw))
	for i, item := range raw {
		if trimmed := bytes.TrimSpace(item); len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", sentinel.ErrInvalidSource, i)
		}
		var rec models.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", sentinel.ErrInvalidSource, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// firstNonSpace peeks the first significant byte without consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}
