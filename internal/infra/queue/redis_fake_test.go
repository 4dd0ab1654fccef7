package queue

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// fakeRedis is an in-memory stand-in for the list, set and sorted set
// commands used by RedisQueue.
type fakeRedis struct {
	mu    sync.Mutex
	lists map[string][]string // index 0 is the head (left)
	sets  map[string]map[string]struct{}
	zsets map[string]map[string]float64
	err   error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		lists: make(map[string][]string),
		sets:  make(map[string]map[string]struct{}),
		zsets: make(map[string]map[string]float64),
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

func (f *fakeRedis) LPush(_ context.Context, key string, values ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	for _, v := range values {
		f.lists[key] = append([]string{toString(v)}, f.lists[key]...)
	}

	return redis.NewIntResult(int64(len(f.lists[key])), nil)
}

func (f *fakeRedis) RPush(_ context.Context, key string, values ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	for _, v := range values {
		f.lists[key] = append(f.lists[key], toString(v))
	}

	return redis.NewIntResult(int64(len(f.lists[key])), nil)
}

func (f *fakeRedis) RPopLPush(_ context.Context, source, destination string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	src := f.lists[source]
	if len(src) == 0 {
		return redis.NewStringResult("", redis.Nil)
	}
	val := src[len(src)-1]
	f.lists[source] = src[:len(src)-1]
	f.lists[destination] = append([]string{val}, f.lists[destination]...)

	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) LRange(_ context.Context, key string, _, _ int64) *redis.StringSliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringSliceResult(nil, f.err)
	}

	return redis.NewStringSliceResult(append([]string(nil), f.lists[key]...), nil)
}

func (f *fakeRedis) LRem(_ context.Context, key string, count int64, value any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	target := toString(value)
	var removed int64
	kept := f.lists[key][:0:0]
	for _, v := range f.lists[key] {
		if v == target && (count == 0 || removed < count) {
			removed++

			continue
		}
		kept = append(kept, v)
	}
	f.lists[key] = kept

	return redis.NewIntResult(removed, nil)
}

func (f *fakeRedis) LLen(_ context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}

	return redis.NewIntResult(int64(len(f.lists[key])), nil)
}

func (f *fakeRedis) SAdd(_ context.Context, key string, members ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]struct{})
	}
	var added int64
	for _, m := range members {
		s := toString(m)
		if _, ok := f.sets[key][s]; !ok {
			f.sets[key][s] = struct{}{}
			added++
		}
	}

	return redis.NewIntResult(added, nil)
}

func (f *fakeRedis) SRem(_ context.Context, key string, members ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, m := range members {
		s := toString(m)
		if _, ok := f.sets[key][s]; ok {
			delete(f.sets[key], s)
			removed++
		}
	}

	return redis.NewIntResult(removed, nil)
}

func (f *fakeRedis) ZAdd(_ context.Context, key string, members ...redis.Z) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.zsets[key] == nil {
		f.zsets[key] = make(map[string]float64)
	}
	var added int64
	for _, m := range members {
		s := toString(m.Member)
		if _, ok := f.zsets[key][s]; !ok {
			added++
		}
		f.zsets[key][s] = m.Score
	}

	return redis.NewIntResult(added, nil)
}

func parseBound(s string) float64 {
	switch s {
	case "-inf":
		return math.Inf(-1)
	case "+inf":
		return math.Inf(1)
	}
	v, _ := strconv.ParseFloat(s, 64)

	return v
}

func (f *fakeRedis) ZRangeByScore(_ context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringSliceResult(nil, f.err)
	}
	lo, hi := parseBound(opt.Min), parseBound(opt.Max)
	var out []string
	for member, score := range f.zsets[key] {
		if score >= lo && score <= hi {
			out = append(out, member)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return f.zsets[key][out[i]] < f.zsets[key][out[j]]
	})

	return redis.NewStringSliceResult(out, nil)
}

func (f *fakeRedis) ZRem(_ context.Context, key string, members ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, m := range members {
		s := toString(m)
		if _, ok := f.zsets[key][s]; ok {
			delete(f.zsets[key], s)
			removed++
		}
	}

	return redis.NewIntResult(removed, nil)
}

func (f *fakeRedis) ZCard(_ context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}

	return redis.NewIntResult(int64(len(f.zsets[key])), nil)
}
