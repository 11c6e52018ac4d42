package pure_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/fossen_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestMemoize_SameKeyCallsOnce(t *testing.T) {
	count := 0
	fn := pure.Memoize(func(args ...any) int {
		count++
		return args[0].(int) * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 6, fn(3))
	assert.Equal(t, 2, count)
}

func TestMemoize_UndefinedIsDistinctFromNil(t *testing.T) {
	var seen []string
	fn := pure.Memoize(func(args ...any) string {
		if len(args) == 0 {
			seen = append(seen, "undefined")
			return "u"
		}
		seen = append(seen, "null")
		return "n"
	})

	assert.Equal(t, "u", fn())
	assert.Equal(t, "u", fn())
	assert.Equal(t, "n", fn(nil))
	assert.Equal(t, "n", fn(nil))
	assert.Equal(t, []string{"undefined", "null"}, seen)
}

func TestMemoize_StringCoercedKeysCollide(t *testing.T) {
	count := 0
	fn := pure.Memoize(func(args ...any) any {
		count++
		return args[0]
	})

	assert.Equal(t, 1, fn(1))
	// "1" prints like 1 and therefore hits the same entry
	assert.Equal(t, 1, fn("1"))
	assert.Equal(t, 1, count)
}

func TestMemoize_OnlyFirstArgumentIsKey(t *testing.T) {
	count := 0
	fn := pure.Memoize(func(args ...any) int {
		count++
		return len(args)
	})

	assert.Equal(t, 2, fn("k", 1))
	assert.Equal(t, 2, fn("k", 2, 3))
	assert.Equal(t, 1, count)
}

type point struct {
	Coords []int // slices are not comparable
}

func (p point) String() string {
	return fmt.Sprintf("point%v", p.Coords)
}

func TestMemoizeKey_StringerKey(t *testing.T) {
	count := 0
	fn := pure.MemoizeKey(func(p point) int {
		count++
		return len(p.Coords)
	})

	assert.Equal(t, 3, fn(point{Coords: []int{1, 2, 3}}))
	assert.Equal(t, 3, fn(point{Coords: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)
}

func TestMemoize_ConcurrentCallersShareResult(t *testing.T) {
	var calls atomic.Int32
	fn := pure.MemoizeKey(func(k string) string {
		calls.Add(1)
		return k + "!"
	})

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = fn("shared")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared!", r)
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	before := calls.Load()
	fn("shared")
	assert.Equal(t, before, calls.Load())
}
