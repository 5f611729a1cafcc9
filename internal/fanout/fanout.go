// Package fanout is the cross-partition query engine. It scatters one
// logical query over many partition tables and gathers the results back
// into a single, globally ordered slice.
package fanout

import (
	"sort"
	"sync"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"
)

// Scan runs query against every partition concurrently and concatenates
// the results. Partitions are independent, so a failing one is logged and
// contributes an empty result set; it never aborts the other legs. The
// merge waits for every partition to answer or fail before returning.
//
// Results come back unordered across partitions: callers must apply
// SortByTimeDesc (and any cap) after the merge, never per partition.
func Scan[T any](operation string, tables []string, query func(table string) ([]T, error)) []T {
	results := make([][]T, len(tables))

	var wg sync.WaitGroup
	for i, table := range tables {
		wg.Add(1)
		go func(i int, table string) {
			defer wg.Done()
			rows, err := query(table)
			if err != nil {
				// Recovered locally: the leg contributes nothing.
				logger.PartitionLog(operation, table, apperrors.PartitionFailure(table, err))
				return
			}
			logger.PartitionLog(operation, table, nil)
			results[i] = rows
		}(i, table)
	}
	wg.Wait()

	var merged []T
	for _, rows := range results {
		merged = append(merged, rows...)
	}
	return merged
}

// First probes partitions sequentially in the given order and returns the
// first hit. probe reports (nil, nil) for a clean miss; a (nil, nil) from
// every partition means the record does not exist anywhere. Unlike Scan,
// a storage error here aborts the probe: point lookups have no partial
// result to fall back on.
func First[T any](tables []string, probe func(table string) (*T, error)) (*T, error) {
	for _, table := range tables {
		hit, err := probe(table)
		if err != nil {
			return nil, err
		}
		if hit != nil {
			return hit, nil
		}
	}
	return nil, nil
}

// SortByTimeDesc orders items most-recent-first by the given timestamp.
// A per-partition sort does not give a total order across partitions, so
// this runs once, after the merge.
func SortByTimeDesc[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}

// Limit caps the merged result set. A limit of 0 means uncapped.
func Limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
