package blocks

import (
	"strconv"
	"strings"
	"sync/atomic"
)

const defaultIDPrefix = "block"

// IDGenerator hands out ids that are unique and monotonically ordered within
// one generator. Each render owns its generator, so concurrent renders never
// interfere and identical inputs produce identical ids.
type IDGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewIDGenerator returns a generator producing ids such as "block-1". An empty
// prefix falls back to "block".
func NewIDGenerator(prefix string) *IDGenerator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultIDPrefix
	}
	return &IDGenerator{prefix: prefix}
}

// Next returns the next id. Safe for concurrent use.
func (g *IDGenerator) Next() string {
	n := g.counter.Add(1)
	return g.prefix + "-" + strconv.FormatUint(n, 10)
}

// Count reports how many ids have been issued.
func (g *IDGenerator) Count() uint64 {
	return g.counter.Load()
}

// Reset rewinds the counter.
func (g *IDGenerator) Reset() {
	g.counter.Store(0)
}
