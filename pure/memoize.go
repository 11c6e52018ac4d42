package pure

import (
	"fmt"
	"sync"

	"github.com/on-the-ground/fossen_go/shared/helper"
)

const numMemoShards = 16

// Memoize caches fn's result per stringified first argument.
//
// Keys are strings, so arguments that print the same share an entry
// (1 and "1" collide). Calling with no argument uses its own "undefined" key,
// distinct from calling with nil. fmt.Stringer values are keyed by String().
// The cache is never evicted and lives as long as the returned function.
func Memoize[R any](fn func(args ...any) R) func(args ...any) R {
	memo := newMemoTable[R]()
	return func(args ...any) R {
		key := memoKey(args)
		if v, ok := memo.load(key); ok {
			return v
		}
		return memo.loadOrStore(key, fn(args...))
	}
}

// MemoizeKey is the single-argument typed form of Memoize.
func MemoizeKey[K, R any](fn func(K) R) func(K) R {
	memo := newMemoTable[R]()
	return func(k K) R {
		key := memoKey([]any{k})
		if v, ok := memo.load(key); ok {
			return v
		}
		return memo.loadOrStore(key, fn(k))
	}
}

func memoKey(args []any) string {
	if len(args) == 0 {
		return "undefined"
	}
	if args[0] == nil {
		return "null"
	}
	return fmt.Sprint(args[0])
}

// memoTable shards entries by key hash so concurrent callers of one memoized
// function do not all contend on the same map.
type memoTable[R any] struct {
	shards [numMemoShards]*sync.Map
}

func newMemoTable[R any]() *memoTable[R] {
	t := &memoTable[R]{}
	for i := range t.shards {
		t.shards[i] = &sync.Map{}
	}
	return t
}

func (t *memoTable[R]) shard(key string) *sync.Map {
	return t.shards[helper.IndexByHash(key, numMemoShards)]
}

func (t *memoTable[R]) load(key string) (R, bool) {
	v, ok := t.shard(key).Load(key)
	if !ok {
		var zero R
		return zero, false
	}
	// nil results of interface type are stored as untyped nil
	r, _ := v.(R)
	return r, true
}

// loadOrStore keeps the first result stored for key when callers race.
func (t *memoTable[R]) loadOrStore(key string, v R) R {
	actual, _ := t.shard(key).LoadOrStore(key, v)
	r, _ := actual.(R)
	return r
}
