package jobs

import (
	"context"
	"log"
	"time"
)

// Evicter drops pages idle longer than maxIdle and reports how many it removed.
type Evicter interface {
	Evict(maxIdle time.Duration) int
}

// PageJanitor periodically evicts idle lookup pages.
type PageJanitor struct {
	pages    Evicter
	interval time.Duration
	maxIdle  time.Duration
}

// NewPageJanitor creates a new page janitor.
func NewPageJanitor(pages Evicter, interval, maxIdle time.Duration) *PageJanitor {
	return &PageJanitor{
		pages:    pages,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Start runs the eviction loop until ctx is done.
func (j *PageJanitor) Start(ctx context.Context) {
	log.Printf("Page janitor started (interval: %v, maxIdle: %v)", j.interval, j.maxIdle)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Page janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *PageJanitor) sweep() {
	if n := j.pages.Evict(j.maxIdle); n > 0 {
		log.Printf("Page janitor: evicted %d idle pages", n)
	}
}
