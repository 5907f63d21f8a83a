package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Registry is a minimal in-memory counter store.
type Registry struct {
	mu     sync.RWMutex
	counts map[string]uint64
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		counts: make(map[string]uint64),
	}
}

// Wrap returns counting middleware for a named route.
func (r *Registry) Wrap(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.Inc(name)
		c.Next()
	}
}

// Inc increments a named counter.
func (r *Registry) Inc(name string) {
	r.mu.Lock()
	r.counts[name]++
	r.mu.Unlock()
}

// Handler exposes counters as plain text.
func (r *Registry) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		r.mu.RLock()
		keys := make([]string, 0, len(r.counts))
		for k := range r.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&b, "%s %d\n", k, r.counts[k])
		}
		r.mu.RUnlock()
		c.String(http.StatusOK, b.String())
	}
}
