package determinismtest

import (
	"sort"
	"time"
)

type iterator struct{ i, n int }

func (it *iterator) Valid() bool  { return it.i < it.n }
func (it *iterator) Next()        { it.i++ }
func (it *iterator) Close() error { return nil }

type file struct{}

func (f *file) Close() error { return nil }

func sumBalances(balances map[string]int64) int64 {
	var total int64
	for _, b := range balances { // want "range over map detected, which can be non-deterministic"
		total += b
	}
	return total
}

func sortedKeys(balances map[string]int64, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := balances[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func stamp() int64 {
	return time.Now().Unix() // want "time.Now reads the wall clock; use the block header time instead"
}

func elapsed(start time.Time) time.Duration {
	return time.Since(start) // want "time.Since reads the wall clock; use the block header time instead"
}

func headerTime(t time.Time) time.Time {
	return t.Add(time.Second)
}

func countDeferred(n int) int {
	it := &iterator{n: n}
	defer it.Close()
	count := 0
	for ; it.Valid(); it.Next() {
		count++
	}
	return count
}

func countLeaky(n int) int {
	it := &iterator{n: n}
	count := 0
	for ; it.Valid(); it.Next() {
		count++
	}
	it.Close() // want "iterator Close should be deferred"
	return count
}

func closeFile(f *file) {
	f.Close()
}
