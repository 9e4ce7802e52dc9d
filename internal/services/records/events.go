package records

import (
	"github.com/phambaophuc/ai-photobooth/internal/models"
	"go.uber.org/zap"
)

const subscriberBuffer = 16

// Subscribe delivers every change on aipb_images until cancel is called.
func (s *Store) Subscribe() (<-chan models.PhotoEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan models.PhotoEvent, subscriberBuffer)
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

// publish never blocks; a full subscriber already has a pending event.
func (s *Store) publish(eventType models.PhotoEventType, photoID string) {
	ev := models.PhotoEvent{Type: eventType, PhotoID: photoID, At: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.logger.Debug("Subscriber busy, event dropped",
				zap.Int("subscriber", id),
				zap.String("photo_id", photoID))
		}
	}
}
