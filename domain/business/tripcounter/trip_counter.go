package tripcounter

import (
	"cmp"
	"sort"
)

// TripCounter counts how many trips share a value of some field (a station, an hour, a journey...)
// + order: values in the order they were first seen
// + counters: amount of trips per value
// + less: ordering used to break ties, the smallest value wins
type TripCounter[K comparable] struct {
	order    []K
	counters map[K]int
	less     func(a K, b K) bool
}

// Entry is a value with its counter
type Entry[K comparable] struct {
	Value   K
	Counter int
}

// NewTripCounter returns a counter whose ties are broken by less
func NewTripCounter[K comparable](less func(a K, b K) bool) *TripCounter[K] {
	return &TripCounter[K]{
		counters: make(map[K]int),
		less:     less,
	}
}

// NewOrderedTripCounter returns a counter for numbers or strings, ties broken by natural order
func NewOrderedTripCounter[K cmp.Ordered]() *TripCounter[K] {
	return NewTripCounter[K](cmp.Less[K])
}

func (tc *TripCounter[K]) UpdateCounter(value K) {
	if _, ok := tc.counters[value]; !ok {
		tc.order = append(tc.order, value)
	}
	tc.counters[value] += 1
}

// Distinct returns the amount of different values counted
func (tc *TripCounter[K]) Distinct() int {
	return len(tc.order)
}

// Total returns the amount of values counted
func (tc *TripCounter[K]) Total() int {
	total := 0
	for _, counter := range tc.counters {
		total += counter
	}
	return total
}

// Mode returns the most frequent value. Among values with the same counter the
// smallest one wins. The second value is false if nothing was counted.
func (tc *TripCounter[K]) Mode() (K, bool) {
	var mode K
	best := 0
	for _, value := range tc.order {
		counter := tc.counters[value]
		if counter > best || (counter == best && tc.less(value, mode)) {
			mode = value
			best = counter
		}
	}
	return mode, best > 0
}

// Entries returns every value with its counter, most frequent first.
// Values with the same counter keep their encounter order.
func (tc *TripCounter[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(tc.order))
	for _, value := range tc.order {
		entries = append(entries, Entry[K]{Value: value, Counter: tc.counters[value]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Counter > entries[j].Counter
	})
	return entries
}
