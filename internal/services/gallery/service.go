// Package gallery keeps the marquee wall current as photos get their display
// copies.
package gallery

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/marquee"
)

type photoLister interface {
	ListDisplayed(ctx context.Context, limit int) ([]string, error)
}

type urlResolver interface {
	PublicURL(path string) string
}

const subscriberBuffer = 4

type Service struct {
	photos  photoLister
	objects urlResolver
	opts    marquee.Options
	limit   int
	logger  *zap.Logger

	mu      sync.RWMutex
	rng     *rand.Rand
	current models.Gallery
	subs    map[int]chan models.Gallery
	next    int
	now     func() time.Time
}

func NewService(photos photoLister, objects urlResolver, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		photos:  photos,
		objects: objects,
		opts: marquee.Options{
			PerWindow: cfg.Marquee.PerWindow,
			Windows:   cfg.Marquee.Windows,
			Latest:    cfg.Marquee.Latest,
		},
		limit:  cfg.Storage.GalleryLimit,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		subs:   make(map[int]chan models.Gallery),
		now:    time.Now,
	}
}

// Compute rebuilds the wall from the displayed photos, newest first.
func (s *Service) Compute(ctx context.Context) (models.Gallery, error) {
	paths, err := s.photos.ListDisplayed(ctx, s.limit)
	if err != nil {
		return models.Gallery{}, err
	}

	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = s.objects.PublicURL(p)
	}

	s.mu.Lock()
	layout, err := marquee.Layout(urls, s.opts, s.rng)
	s.mu.Unlock()
	if err != nil {
		return models.Gallery{}, err
	}

	return models.Gallery{
		Images:      layout.Images,
		Marquees:    layout.Windows,
		RefreshedAt: s.now(),
	}, nil
}

// Refresh recomputes the wall and pushes it to every subscriber.
func (s *Service) Refresh(ctx context.Context) (models.Gallery, error) {
	g, err := s.Compute(ctx)
	if err != nil {
		return models.Gallery{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = g
	for id, ch := range s.subs {
		// keep only the newest wall for slow readers
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- g:
		default:
			s.logger.Debug("Gallery subscriber busy", zap.Int("subscriber", id))
		}
	}
	return g, nil
}

// Current returns the last computed wall, computing it on first use.
func (s *Service) Current(ctx context.Context) (models.Gallery, error) {
	s.mu.RLock()
	g := s.current
	s.mu.RUnlock()

	if !g.RefreshedAt.IsZero() {
		return g, nil
	}
	return s.Refresh(ctx)
}

func (s *Service) Subscribe() (<-chan models.Gallery, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan models.Gallery, subscriberBuffer)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			close(c)
			delete(s.subs, id)
		}
	}
	return ch, cancel
}

// Watch refreshes the wall on every photo update until ctx is done or events
// is closed. Inserts are ignored since new captures have no display copy yet.
func (s *Service) Watch(ctx context.Context, events <-chan models.PhotoEvent) {
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Error("Initial gallery load failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type != models.PhotoUpdated {
				continue
			}
			if _, err := s.Refresh(ctx); err != nil {
				s.logger.Error("Gallery refresh failed",
					zap.String("photo_id", ev.PhotoID),
					zap.Error(err))
				continue
			}
			s.logger.Debug("Gallery refreshed", zap.String("photo_id", ev.PhotoID))
		}
	}
}
