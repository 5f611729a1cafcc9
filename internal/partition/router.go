package partition

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// WorkerPartitionCount is fixed. Changing it would silently strand every
// existing worker in the wrong partition, so it never changes.
const WorkerPartitionCount = 8

const (
	workerTablePrefix = "workers_p"
	jobTablePrefix    = "jobs_"

	// LegacyJobsTable is the unpartitioned default table. It is excluded
	// from partition discovery.
	LegacyJobsTable = "jobs"
)

// WorkerPartition maps a worker ID to its hash partition. The hash is
// 32-bit FNV-1a over the canonical ID string, which is stable across
// processes and platforms; same ID always yields the same partition.
func WorkerPartition(workerID string) int {
	h := fnv.New32a()
	h.Write([]byte(workerID))
	return int(h.Sum32() % WorkerPartitionCount)
}

// WorkerTable returns the physical table owning the given worker ID.
func WorkerTable(workerID string) string {
	return WorkerTableAt(WorkerPartition(workerID))
}

// WorkerTableAt returns the table name of partition n.
func WorkerTableAt(n int) string {
	return fmt.Sprintf("%s%d", workerTablePrefix, n)
}

// AllWorkerTables returns every worker partition table, ordered p0..p7.
// The order matters: legacy fallback scans probe partitions in this order.
func AllWorkerTables() []string {
	tables := make([]string, WorkerPartitionCount)
	for i := range tables {
		tables[i] = WorkerTableAt(i)
	}
	return tables
}

// JobTable returns the year partition table for jobs posted in the given
// year. Computed once at job creation; the placement is permanent.
func JobTable(year int) string {
	return fmt.Sprintf("%s%04d", jobTablePrefix, year)
}

// JobTableYear parses a table name of the form "jobs_YYYY". It rejects the
// legacy "jobs" table and anything that is not a 4-digit year suffix.
func JobTableYear(table string) (int, bool) {
	suffix, found := strings.CutPrefix(table, jobTablePrefix)
	if !found || len(suffix) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(suffix)
	if err != nil || year < 1000 {
		return 0, false
	}
	return year, true
}
