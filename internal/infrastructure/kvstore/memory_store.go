package kvstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used by tests and KV_BACKEND=memory.
type MemoryStore struct {
	mu      sync.Mutex
	hashes  map[string]map[string]string
	lists   map[string][]string
	zsets   map[string]map[string]float64
	expires map[string]time.Time
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		hashes:  map[string]map[string]string{},
		lists:   map[string][]string{},
		zsets:   map[string]map[string]float64{},
		expires: map[string]time.Time{},
		now:     time.Now,
	}
}

// WithClock swaps the time source, mainly for TTL tests.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// evictIfExpired must be called with mu held.
func (s *MemoryStore) evictIfExpired(key string) {
	exp, ok := s.expires[key]
	if !ok || s.now().Before(exp) {
		return
	}
	delete(s.hashes, key)
	delete(s.lists, key)
	delete(s.zsets, key)
	delete(s.expires, key)
}

func (s *MemoryStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	out := make(map[string]string, len(s.hashes[key]))
	for k, v := range s.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) HSet(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	h, ok := s.hashes[key]
	if !ok {
		h = map[string]string{}
		s.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (s *MemoryStore) LPush(_ context.Context, key string, values ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	s.lists[key] = append(lpushOrder(values), s.lists[key]...)
	return nil
}

func (s *MemoryStore) RPush(_ context.Context, key string, values ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	s.lists[key] = append(s.lists[key], values...)
	return nil
}

func (s *MemoryStore) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	return sliceRange(s.lists[key], start, stop), nil
}

func (s *MemoryStore) LTrim(_ context.Context, key string, start, stop int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	trimmed := trimList(s.lists[key], start, stop)
	if len(trimmed) == 0 {
		delete(s.lists, key)
		return nil
	}
	s.lists[key] = trimmed
	return nil
}

func (s *MemoryStore) LRem(_ context.Context, key string, count int64, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	s.lists[key] = removeFromList(s.lists[key], count, value)
	return nil
}

func (s *MemoryStore) ZAdd(_ context.Context, key string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	z, ok := s.zsets[key]
	if !ok {
		z = map[string]float64{}
		s.zsets[key] = z
	}
	z[member] = score
	return nil
}

func (s *MemoryStore) ZRangeByScore(_ context.Context, key string, min, max float64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	return membersByScore(s.zsets[key], min, max), nil
}

func (s *MemoryStore) ZRem(_ context.Context, key string, members ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range members {
		delete(s.zsets[key], m)
	}
	return nil
}

func (s *MemoryStore) ZCard(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)

	return int64(len(s.zsets[key])), nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.hashes, k)
		delete(s.lists, k)
		delete(s.zsets, k)
		delete(s.expires, k)
	}
	return nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, h := s.hashes[key]
	_, l := s.lists[key]
	_, z := s.zsets[key]
	if !h && !l && !z {
		return nil
	}
	s.expires[key] = s.now().Add(ttl)
	return nil
}

// membersByScore returns members with min <= score <= max ordered by score,
// ties broken lexically as Redis does.
func membersByScore(z map[string]float64, min, max float64) []string {
	type entry struct {
		member string
		score  float64
	}
	entries := make([]entry, 0, len(z))
	for m, sc := range z {
		if sc >= min && sc <= max {
			entries = append(entries, entry{member: m, score: sc})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score == entries[j].score {
			return entries[i].member < entries[j].member
		}
		return entries[i].score < entries[j].score
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.member
	}
	return out
}
