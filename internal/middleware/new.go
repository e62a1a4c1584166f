package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the shared HTTP middleware. requestsPerMin bounds each client
// IP independently; the per-IP limiter state expires after idle TTL so the
// table does not grow without bound.
func New(l log.Logger, requestsPerMin int) Middleware {
	if requestsPerMin <= 0 {
		requestsPerMin = DefaultRequestsPerMin
	}

	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l: l,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			MaxTrackedClients,
			nil,
			5*time.Minute,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}
