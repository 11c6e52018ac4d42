package helper

import (
	"github.com/cespare/xxhash/v2"
)

// GetTypedValueOf2 asserts the getter's result to T. ok is false when the
// getter found nothing or the value has another type.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// IndexByHash maps key onto one of n buckets.
func IndexByHash(key string, n int) int {
	switch n {
	case 0:
		panic("number of buckets cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(n))
	}
}
