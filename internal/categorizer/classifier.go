// Package categorizer assigns events to the fixed category taxonomy using an
// external text-classification service. Whatever the service does, callers
// always get back a valid category.
package categorizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/logger"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

// DefaultMaxOutputTokens is enough for the longest category name.
const DefaultMaxOutputTokens = 10

// ClassificationRequest is what gets sent to the text-classification service.
type ClassificationRequest struct {
	Instructions    string
	Content         string
	Temperature     float32
	MaxOutputTokens int32
}

// TextClassifier classifies text against the taxonomy in the request
// instructions and returns the raw answer.
type TextClassifier interface {
	ClassifyText(ctx context.Context, req ClassificationRequest) (string, error)
}

// CategoryCache remembers answers for identical events.
type CategoryCache interface {
	Get(ctx context.Context, key string) (domain.Category, bool, error)
	Set(ctx context.Context, key string, category domain.Category) error
}

// Classifier is the event category classifier.
type Classifier struct {
	client    TextClassifier
	cache     CategoryCache
	logger    *zerolog.Logger
	maxTokens int32
	timeout   time.Duration
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCache enables result caching.
func WithCache(cache CategoryCache) Option {
	return func(c *Classifier) { c.cache = cache }
}

// WithLogger sets the logger used for fallback notices.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Classifier) { c.logger = &l }
}

// WithMaxOutputTokens overrides the output token cap.
func WithMaxOutputTokens(n int32) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithTimeout bounds the external call.
func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) { c.timeout = d }
}

// New creates a Classifier. A nil client is allowed; every event then ends
// up Uncategorized.
func New(client TextClassifier, opts ...Option) *Classifier {
	c := &Classifier{
		client:    client,
		maxTokens: DefaultMaxOutputTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the category for an event. It makes at most one external
// call and never fails: any error or off-list answer becomes Uncategorized.
func (c *Classifier) Classify(ctx context.Context, title, location string) (category domain.Category) {
	l := c.log(ctx).With().Str("title", title).Str("location", location).Logger()

	key := CacheKey(title, location)
	if cached, ok := c.lookup(ctx, key, &l); ok {
		metrics.RecordClassification(metrics.OutcomeCacheHit)
		return cached
	}

	if c.client == nil {
		l.Warn().Msg("event classification unavailable, no classifier configured")
		metrics.RecordClassification(metrics.OutcomeFallbackError)
		return domain.CategoryUncategorized
	}

	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Msg("event classification panicked")
			metrics.RecordClassification(metrics.OutcomeFallbackError)
			category = domain.CategoryUncategorized
		}
	}()

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	answer, err := c.client.ClassifyText(callCtx, ClassificationRequest{
		Instructions:    Instructions(),
		Content:         UserContent(title, location),
		Temperature:     0,
		MaxOutputTokens: c.maxTokens,
	})
	metrics.ObserveClassificationCall(time.Since(start))
	if err != nil {
		l.Warn().Err(err).Msg("event classification failed, using fallback category")
		metrics.RecordClassification(metrics.OutcomeFallbackError)
		return domain.CategoryUncategorized
	}

	answer = strings.TrimSpace(answer)
	parsed, ok := domain.ParseCategory(answer)
	if !ok {
		l.Warn().Str("answer", answer).Msg("event classification returned unknown category, using fallback category")
		metrics.RecordClassification(metrics.OutcomeFallbackInvalid)
		return domain.CategoryUncategorized
	}

	metrics.RecordClassification(metrics.OutcomeClassified)
	c.store(ctx, key, parsed, &l)
	return parsed
}

func (c *Classifier) lookup(ctx context.Context, key string, l *zerolog.Logger) (domain.Category, bool) {
	if c.cache == nil {
		return "", false
	}
	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		l.Debug().Err(err).Msg("category cache lookup failed")
		return "", false
	}
	if !ok {
		return "", false
	}
	// stale or foreign entries are ignored rather than trusted
	if _, valid := domain.ParseCategory(string(cached)); !valid {
		return "", false
	}
	return cached, true
}

func (c *Classifier) store(ctx context.Context, key string, category domain.Category, l *zerolog.Logger) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, category); err != nil {
		l.Debug().Err(err).Msg("category cache store failed")
	}
}

func (c *Classifier) log(ctx context.Context) *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.FromContext(ctx)
}

// CacheKey identifies an event by its normalized title and location.
func CacheKey(title, location string) string {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\n%s", norm(title), norm(location))))
	return hex.EncodeToString(sum[:])
}
