package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultTTL applies when Set is called without a ttl
const DefaultTTL = 5 * time.Minute

// MemoryCache is a size-bounded LRU cache with per-entry expiry
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List // front is most recently used
	size     int64
	maxBytes int64
	now      func() time.Time

	hits      int64
	misses    int64
	evictions int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type entry struct {
	key    string
	value  []byte
	expiry time.Time
}

func (e *entry) size() int64 {
	return int64(len(e.key) + len(e.value))
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes.
// A non-positive size means unbounded. Expired entries are swept every
// minute until Stop is called.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		maxBytes: maxSizeMB * 1024 * 1024,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweepLoop(time.Minute)

	return mc
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	el, ok := mc.entries[key]
	if !ok {
		mc.misses++
		return nil, false
	}

	e := el.Value.(*entry)
	if mc.now().After(e.expiry) {
		mc.remove(el)
		mc.misses++
		return nil, false
	}

	mc.order.MoveToFront(el)
	mc.hits++
	return e.value, true
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	e := &entry{key: key, value: value, expiry: mc.now().Add(ttl)}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.entries[key]; ok {
		mc.remove(el)
	}

	// An entry larger than the whole cache is never stored
	if mc.maxBytes > 0 && e.size() > mc.maxBytes {
		return nil
	}

	mc.entries[key] = mc.order.PushFront(e)
	mc.size += e.size()

	for mc.maxBytes > 0 && mc.size > mc.maxBytes {
		mc.remove(mc.order.Back())
		mc.evictions++
	}

	return nil
}

func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.entries[key]; ok {
		mc.remove(el)
	}
	return nil
}

func (mc *MemoryCache) Clear(_ context.Context) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries = make(map[string]*list.Element)
	mc.order.Init()
	mc.size = 0
	return nil
}

// Stats returns current counters
func (mc *MemoryCache) Stats() Stats {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	return Stats{
		Hits:      mc.hits,
		Misses:    mc.misses,
		Evictions: mc.evictions,
		Entries:   len(mc.entries),
		SizeBytes: mc.size,
		MaxBytes:  mc.maxBytes,
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() { close(mc.stopCh) })
	mc.wg.Wait()
}

// remove must be called with mu held
func (mc *MemoryCache) remove(el *list.Element) {
	e := mc.order.Remove(el).(*entry)
	delete(mc.entries, e.key)
	mc.size -= e.size()
}

func (mc *MemoryCache) sweepLoop(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) sweep() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := mc.now()
	for el := mc.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*entry).expiry) {
			mc.remove(el)
			mc.evictions++
		}
		el = prev
	}
}
