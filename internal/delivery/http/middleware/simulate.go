package middleware

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"talentflow/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// SimulatorConfig tunes the fake network conditions applied to /api traffic.
// This is a demo-boundary concern: the data layer underneath stays
// deterministic, so a request rejected here can simply be retried.
type SimulatorConfig struct {
	LatencyMin      time.Duration
	LatencyMax      time.Duration
	WriteErrorRate  float64 // chance a mutating request fails outright
	ReorderFailRate float64 // extra unconditional failure chance on reorder
}

// NetworkSimulator injects latency and random write failures the way a real,
// flaky network would. Failures are injected before the handler runs, so no
// partial state is ever left behind. rand.Rand is not safe for concurrent
// handlers, so draws go through a mutex.
func NetworkSimulator(cfg SimulatorConfig, rng *rand.Rand) gin.HandlerFunc {
	var mu sync.Mutex
	roll := func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64()
	}
	jitter := func(span time.Duration) time.Duration {
		mu.Lock()
		defer mu.Unlock()
		return time.Duration(rng.Int63n(int64(span)))
	}

	return func(c *gin.Context) {
		isWrite := c.Request.Method != http.MethodGet

		if cfg.ReorderFailRate > 0 && strings.HasSuffix(c.Request.URL.Path, "/reorder") {
			if roll() < cfg.ReorderFailRate {
				response.Error(c, http.StatusInternalServerError, "Reorder failed", nil)
				c.Abort()
				return
			}
		}

		if cfg.LatencyMax > cfg.LatencyMin {
			time.Sleep(cfg.LatencyMin + jitter(cfg.LatencyMax-cfg.LatencyMin))
		}

		if isWrite && cfg.WriteErrorRate > 0 && roll() < cfg.WriteErrorRate {
			response.Error(c, http.StatusInternalServerError, "Network error", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
