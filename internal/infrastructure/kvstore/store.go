package kvstore

import (
	"context"
	"time"
)

// Store is the subset of a hosted hash/list/sorted-set KV store the service
// relies on. Semantics follow Redis: missing keys read as empty, list indices
// are inclusive and negative indices count from the tail.
//
// No operation spans more than one key. Callers that write a record and its
// index entries get no atomicity across those writes.
type Store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSet(ctx context.Context, key string, fields map[string]string) error

	LPush(ctx context.Context, key string, values ...string) error
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
	LRem(ctx context.Context, key string, count int64, value string) error

	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error)
	ZRem(ctx context.Context, key string, members ...string) error
	ZCard(ctx context.Context, key string) (int64, error)

	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// rangeBounds converts Redis-style inclusive start/stop indices into a Go
// slice window over a list of length n. ok is false when the window is empty.
func rangeBounds(n, start, stop int64) (from, to int64, ok bool) {
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop + 1, true
}

func sliceRange(list []string, start, stop int64) []string {
	from, to, ok := rangeBounds(int64(len(list)), start, stop)
	if !ok {
		return []string{}
	}
	out := make([]string, to-from)
	copy(out, list[from:to])
	return out
}

func trimList(list []string, start, stop int64) []string {
	return sliceRange(list, start, stop)
}

// removeFromList mirrors LREM: count > 0 removes from the head, count < 0 from
// the tail and count == 0 removes every occurrence.
func removeFromList(list []string, count int64, value string) []string {
	out := make([]string, 0, len(list))
	switch {
	case count >= 0:
		removed := int64(0)
		for _, v := range list {
			if v == value && (count == 0 || removed < count) {
				removed++
				continue
			}
			out = append(out, v)
		}
	default:
		limit := -count
		removed := int64(0)
		keep := make([]bool, len(list))
		for i := len(list) - 1; i >= 0; i-- {
			if list[i] == value && removed < limit {
				removed++
				continue
			}
			keep[i] = true
		}
		for i, v := range list {
			if keep[i] {
				out = append(out, v)
			}
		}
	}
	return out
}

// lpushOrder returns values in the order LPUSH leaves them at the head.
func lpushOrder(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
