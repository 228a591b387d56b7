// Package search implements the debounced product-suggestion client:
// keystrokes arrive through Input, a fetch fires only after a quiet
// period, and results are capped before delivery.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shophub-io/storefront/models"
	"github.com/sirupsen/logrus"
)

const (
	debounceDelay  = 300 * time.Millisecond
	minQueryLength = 2
	maxSuggestions = 5
	fetchTimeout   = 5 * time.Second
)

// FetchFunc queries the backend suggestion endpoint.
type FetchFunc func(ctx context.Context, keyword string) ([]models.Product, error)

// DeliverFunc receives each suggestion list; an empty query or a failed
// fetch delivers nil, which clears the list.
type DeliverFunc func(suggestions []models.Product)

// Suggester is a cancellable scheduled task: each Input cancels any
// pending fetch and reschedules. A generation counter drops responses
// that resolve after a newer keystroke superseded them.
type Suggester struct {
	fetch   FetchFunc
	deliver DeliverFunc
	log     *logrus.Entry
	delay   time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

func NewSuggester(fetch FetchFunc, deliver DeliverFunc, log *logrus.Logger) *Suggester {
	return &Suggester{
		fetch:   fetch,
		deliver: deliver,
		log:     log.WithField("component", "search"),
		delay:   debounceDelay,
	}
}

// Input registers a keystroke. Queries shorter than two characters
// (after trimming) cancel any pending fetch and clear the list.
func (s *Suggester) Input(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len(query) < minQueryLength {
		s.deliver(nil)
		return
	}

	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(gen, query)
	})
}

// Close cancels any pending fetch. Further Input calls are ignored.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Suggester) fire(gen uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	suggestions, err := s.fetch(ctx, query)
	if err != nil {
		s.log.WithError(err).WithField("query", query).Warn("suggestion fetch failed")
		suggestions = nil
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	// Delivery happens under the lock so that once Close returns, no
	// further deliveries can start.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}
	s.deliver(suggestions)
}
