// Package quotes provides market-data retrieval with an in-memory
// cache. Quotes are never persisted: the cache is refreshed on a cron
// schedule and on stale lookups, and the valuation engine degrades
// gracefully when a symbol cannot be quoted at all.
package quotes

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/jdevries/stock-tracker-backend/internal/model"
)

// fetchConcurrency bounds parallel upstream requests per lookup batch.
const fetchConcurrency = 4

// Fetcher retrieves a quote for one symbol from an upstream source.
type Fetcher interface {
	GetQuote(ctx context.Context, symbol string) (model.Quote, error)
}

type cachedQuote struct {
	quote     model.Quote
	fetchedAt time.Time
}

// Service serves quotes out of an in-memory cache, fetching misses and
// stale entries from the upstream Fetcher. Safe for concurrent use.
type Service struct {
	fetcher Fetcher
	ttl     time.Duration

	mu    sync.RWMutex
	cache map[string]cachedQuote

	cron *cron.Cron
}

// NewService creates a quote service. ttl controls how long a fetched
// quote is served before a lookup refetches it.
func NewService(fetcher Fetcher, ttl time.Duration) *Service {
	return &Service{
		fetcher: fetcher,
		ttl:     ttl,
		cache:   make(map[string]cachedQuote),
	}
}

// GetQuote returns the quote for one symbol, from cache when fresh.
func (s *Service) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	s.mu.RLock()
	entry, ok := s.cache[symbol]
	s.mu.RUnlock()

	if ok && time.Since(entry.fetchedAt) < s.ttl {
		return entry.quote, nil
	}

	quote, err := s.fetcher.GetQuote(ctx, symbol)
	if err != nil {
		// Serve a stale quote over no quote at all.
		if ok {
			return entry.quote, nil
		}
		return model.Quote{}, err
	}

	s.store(symbol, quote)
	return quote, nil
}

// GetQuotes resolves a batch of symbols in parallel. Symbols that
// cannot be quoted are simply absent from the result map; the valuation
// engine treats a missing entry as a degradation, not a failure, so an
// upstream outage never blocks valuation.
func (s *Service) GetQuotes(ctx context.Context, symbols []string) map[string]model.Quote {
	results := make(map[string]model.Quote, len(symbols))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			quote, err := s.GetQuote(ctx, symbol)
			if err != nil {
				log.Printf("quote lookup failed for %s: %v", symbol, err)
				return nil
			}
			mu.Lock()
			results[symbol] = quote
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only orders completion.
	_ = g.Wait()
	return results
}

// StartRefresh begins background refresh of every cached symbol on the
// given cron schedule (e.g. "@every 15m").
func (s *Service) StartRefresh(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.refreshAll); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

// Stop halts the background refresh, waiting for a running refresh to
// finish.
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Service) refreshAll() {
	s.mu.RLock()
	symbols := make([]string, 0, len(s.cache))
	for symbol := range s.cache {
		symbols = append(symbols, symbol)
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, symbol := range symbols {
		quote, err := s.fetcher.GetQuote(ctx, symbol)
		if err != nil {
			log.Printf("quote refresh failed for %s: %v", symbol, err)
			continue
		}
		s.store(symbol, quote)
	}
}

func (s *Service) store(symbol string, quote model.Quote) {
	s.mu.Lock()
	s.cache[symbol] = cachedQuote{quote: quote, fetchedAt: time.Now()}
	s.mu.Unlock()
}
