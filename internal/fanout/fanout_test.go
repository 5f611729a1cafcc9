package fanout

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Table    string
	PostedAt time.Time
}

func TestScanMergesAllPartitions(t *testing.T) {
	t.Parallel()

	tables := []string{"t0", "t1", "t2"}
	merged := Scan("test", tables, func(table string) ([]row, error) {
		return []row{{Table: table}, {Table: table}}, nil
	})

	assert.Len(t, merged, 6)
	counts := map[string]int{}
	for _, r := range merged {
		counts[r.Table]++
	}
	for _, table := range tables {
		assert.Equal(t, 2, counts[table])
	}
}

func TestScanToleratesFailingPartition(t *testing.T) {
	t.Parallel()

	tables := []string{"t0", "t1", "t2"}
	merged := Scan("test", tables, func(table string) ([]row, error) {
		if table == "t1" {
			return nil, errors.New("connection reset")
		}
		return []row{{Table: table}}, nil
	})

	// The failing leg contributes nothing; the others still answer.
	assert.Len(t, merged, 2)
	for _, r := range merged {
		assert.NotEqual(t, "t1", r.Table)
	}
}

func TestScanEmptyTables(t *testing.T) {
	t.Parallel()

	merged := Scan("test", nil, func(table string) ([]row, error) {
		t.Fatal("query must not run with no partitions")
		return nil, nil
	})
	assert.Empty(t, merged)
}

func TestFirstReturnsEarliestHit(t *testing.T) {
	t.Parallel()

	var probed []string
	hit, err := First([]string{"t0", "t1", "t2"}, func(table string) (*row, error) {
		probed = append(probed, table)
		if table == "t1" {
			return &row{Table: table}, nil
		}
		return nil, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "t1", hit.Table)
	// The probe stops at the first hit; t2 is never touched.
	assert.Equal(t, []string{"t0", "t1"}, probed)
}

func TestFirstCleanMiss(t *testing.T) {
	t.Parallel()

	hit, err := First([]string{"t0", "t1"}, func(table string) (*row, error) {
		return nil, nil
	})
	assert.NoError(t, err)
	assert.Nil(t, hit)
}

func TestFirstAbortsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	hit, err := First([]string{"t0", "t1"}, func(table string) (*row, error) {
		if table == "t0" {
			return nil, boom
		}
		return &row{Table: table}, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, hit)
}

func TestSortByTimeDescAcrossPartitions(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Two partitions, each internally ordered, interleaved timestamps.
	merged := Scan("test", []string{"a", "b"}, func(table string) ([]row, error) {
		if table == "a" {
			return []row{
				{Table: "a", PostedAt: base.Add(5 * time.Hour)},
				{Table: "a", PostedAt: base.Add(1 * time.Hour)},
			}, nil
		}
		return []row{
			{Table: "b", PostedAt: base.Add(4 * time.Hour)},
			{Table: "b", PostedAt: base.Add(2 * time.Hour)},
			{Table: "b", PostedAt: base.Add(3 * time.Hour)},
		}, nil
	})

	SortByTimeDesc(merged, func(r row) time.Time { return r.PostedAt })

	assert.Len(t, merged, 5)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].PostedAt.After(merged[i-1].PostedAt),
			"result must be globally ordered, position %d out of order", i)
	}
	assert.Equal(t, base.Add(5*time.Hour), merged[0].PostedAt)
	assert.Equal(t, base.Add(1*time.Hour), merged[4].PostedAt)
}

func TestLimit(t *testing.T) {
	t.Parallel()

	items := make([]row, 10)
	for i := range items {
		items[i] = row{Table: fmt.Sprintf("t%d", i)}
	}

	assert.Len(t, Limit(items, 3), 3)
	assert.Equal(t, "t0", Limit(items, 3)[0].Table)
	assert.Len(t, Limit(items, 100), 10)
	assert.Len(t, Limit(items, 0), 10) // 0 means uncapped
}
