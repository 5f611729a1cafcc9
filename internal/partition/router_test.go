package partition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPartitionIsStable(t *testing.T) {
	t.Parallel()

	id := "7d3f9c2a-5b1e-4f6d-8a9b-0c1d2e3f4a5b"
	first := WorkerPartition(id)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, WorkerPartition(id))
	}
}

func TestWorkerPartitionRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		p := WorkerPartition(fmt.Sprintf("worker-%d", i))
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, WorkerPartitionCount)
	}
}

func TestWorkerPartitionSpreads(t *testing.T) {
	t.Parallel()

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		seen[WorkerPartition(fmt.Sprintf("worker-%d", i))] = true
	}
	// FNV-1a over a thousand distinct IDs should reach every bucket.
	assert.Len(t, seen, WorkerPartitionCount)
}

func TestWorkerTableMatchesPartition(t *testing.T) {
	t.Parallel()

	id := "some-worker-id"
	assert.Equal(t, WorkerTableAt(WorkerPartition(id)), WorkerTable(id))
	assert.Equal(t, "workers_p0", WorkerTableAt(0))
	assert.Equal(t, "workers_p7", WorkerTableAt(7))
}

func TestAllWorkerTablesOrdered(t *testing.T) {
	t.Parallel()

	tables := AllWorkerTables()
	assert.Len(t, tables, WorkerPartitionCount)
	for i, table := range tables {
		assert.Equal(t, WorkerTableAt(i), table)
	}
}

func TestJobTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jobs_2024", JobTable(2024))
	assert.Equal(t, "jobs_2025", JobTable(2025))
}

func TestJobTableYear(t *testing.T) {
	t.Parallel()

	year, ok := JobTableYear("jobs_2024")
	assert.True(t, ok)
	assert.Equal(t, 2024, year)

	for _, name := range []string{
		"jobs",       // legacy unpartitioned table
		"jobs_",      // no year
		"jobs_abc",   // not numeric
		"jobs_24",    // too short
		"jobs_20245", // too long
		"workers_p0", // different family
		"applications",
	} {
		_, ok := JobTableYear(name)
		assert.False(t, ok, "expected %q to be rejected", name)
	}
}
