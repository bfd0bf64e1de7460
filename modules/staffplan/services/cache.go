package services

import (
	"sync"
)

type stage string

const (
	stageGrouping stage = "grouping"
	stageRows     stage = "rows"
	stageView     stage = "view"
)

// viewCache memoizes pipeline stage outputs keyed by their input snapshot.
type viewCache struct {
	mu         sync.RWMutex
	entries    map[string]any
	stageIndex map[stage]map[string]struct{}
}

func newViewCache() *viewCache {
	return &viewCache{
		entries:    make(map[string]any),
		stageIndex: make(map[stage]map[string]struct{}),
	}
}

func (c *viewCache) Get(st stage, key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[string(st)+"|"+key]
	recordCacheRequest(string(st), ok)
	return v, ok
}

// Set stores value as the only entry of its stage. Older snapshots are stale by construction.
func (c *viewCache) Set(st stage, key string, value any) {
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked(st)
	full := string(st) + "|" + key
	c.entries[full] = value
	c.stageIndex[st] = map[string]struct{}{full: {}}
}

// Invalidate drops the given stages.
func (c *viewCache) Invalidate(reason string, stages ...stage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, st := range stages {
		c.dropLocked(st)
	}
	recordCacheInvalidate(reason)
}

func (c *viewCache) dropLocked(st stage) {
	for key := range c.stageIndex[st] {
		delete(c.entries, key)
	}
	delete(c.stageIndex, st)
}

func (c *viewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
