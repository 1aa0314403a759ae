package rut

import "sync"

// checkMemo caches verifier computations keyed by the exact stripped digit
// string. It is unbounded on purpose: entries are only removed by an
// explicit reset, never by an eviction policy. The memo is pure
// acceleration; removing it changes latency, not results.
type checkMemo struct {
	mu sync.RWMutex
	m  map[string]string
}

func newCheckMemo() *checkMemo {
	return &checkMemo{m: make(map[string]string)}
}

func (c *checkMemo) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *checkMemo) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
}

func (c *checkMemo) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[string]string)
}

var memo = newCheckMemo()

// ResetMemo clears the verifier memo. It is idempotent and safe to call
// concurrently with validation; callers that need bounded memory over
// long-running batch work should call it periodically.
func ResetMemo() {
	memo.reset()
}
