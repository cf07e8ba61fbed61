package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"medication-dashboard/internal/models"
	"medication-dashboard/internal/repositories"
	"medication-dashboard/internal/wordcloud"

	"golang.org/x/sync/singleflight"
)

// WordCloudService renders the word cloud of a pair's item names. Rendered
// images are cached per pair since the dataset never changes after startup.
type WordCloudService struct {
	claimRepo repositories.ClaimRepositoryInterface
	options   wordcloud.Options
	metrics   MetricsRecorderInterface
	logger    DashboardLoggerInterface

	group     singleflight.Group
	mu        sync.RWMutex
	cache     map[models.ComparisonPair][]byte
	cacheSize int
}

func NewWordCloudService(
	claimRepo repositories.ClaimRepositoryInterface,
	options wordcloud.Options,
	cacheSize int,
	metrics MetricsRecorderInterface,
	logger DashboardLoggerInterface,
) WordCloudServiceInterface {
	return &WordCloudService{
		claimRepo: claimRepo,
		options:   options,
		metrics:   metrics,
		logger:    logger,
		cache:     make(map[models.ComparisonPair][]byte),
		cacheSize: cacheSize,
	}
}

// RenderPNG returns wordcloud.ErrNoWords when the pair has no item names to draw
func (s *WordCloudService) RenderPNG(ctx context.Context, pair models.ComparisonPair) ([]byte, error) {
	if img, ok := s.cached(pair); ok {
		s.recordCache("hit")
		if s.logger != nil {
			s.logger.LogWordCloudRendered(ctx, pair.Label(), 0, true, 0)
		}
		return img, nil
	}
	s.recordCache("miss")

	// Concurrent requests for the same tab share one render.
	v, err, _ := s.group.Do(pair.Treatment+"\x00"+pair.Provider, func() (interface{}, error) {
		return s.render(ctx, pair)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *WordCloudService) render(ctx context.Context, pair models.ComparisonPair) ([]byte, error) {
	lines, err := s.claimRepo.FindByPair(ctx, pair.Treatment, pair.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for %s: %w", pair.Label(), err)
	}

	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.ItemName != "" {
			items = append(items, line.ItemName)
		}
	}

	start := time.Now()
	cloud, err := wordcloud.Generate(strings.Join(items, " "), s.options)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := cloud.EncodePNG(&buf); err != nil {
		return nil, err
	}
	duration := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("wordcloud_render", duration)
	}
	if s.logger != nil {
		s.logger.LogWordCloudRendered(ctx, pair.Label(), len(cloud.Placements), false, duration.Milliseconds())
	}

	img := buf.Bytes()
	s.store(pair, img)
	return img, nil
}

func (s *WordCloudService) cached(pair models.ComparisonPair) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.cache[pair]
	return img, ok
}

// store keeps the image unless the cache is disabled or full
func (s *WordCloudService) store(pair models.ComparisonPair, img []byte) {
	if s.cacheSize <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cache) >= s.cacheSize {
		return
	}
	s.cache[pair] = img
}

func (s *WordCloudService) recordCache(result string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("wordcloud_cache_total", map[string]string{"result": result})
	}
}
