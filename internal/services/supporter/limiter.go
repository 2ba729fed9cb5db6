package supporter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long an author may stay quiet before their limiter is dropped
const idleAfter = 30 * time.Minute

type poster struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// postLimiter keeps one token bucket per author. Times come from the service clock.
type postLimiter struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	posters map[string]*poster
}

func newPostLimiter(interval time.Duration, burst int) *postLimiter {
	return &postLimiter{
		every:   rate.Every(interval),
		burst:   burst,
		posters: make(map[string]*poster),
	}
}

// allow reports whether authorID may post at now, and prunes idle authors
func (l *postLimiter) allow(authorID string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, p := range l.posters {
		if now.Sub(p.lastSeen) > idleAfter {
			delete(l.posters, id)
		}
	}

	p, ok := l.posters[authorID]
	if !ok {
		p = &poster{limiter: rate.NewLimiter(l.every, l.burst)}
		l.posters[authorID] = p
	}
	p.lastSeen = now

	return p.limiter.AllowN(now, 1)
}
