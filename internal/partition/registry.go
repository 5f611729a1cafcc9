package partition

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Registry caches the set of existing job partition tables so that scans do
// not hit schema introspection on every call. The cache is refreshed when
// its TTL lapses and whenever a new year partition is created.
type Registry struct {
	db  *gorm.DB
	ttl time.Duration

	mu          sync.RWMutex
	jobTables   []string
	refreshedAt time.Time
}

func NewRegistry(db *gorm.DB, ttl time.Duration) *Registry {
	return &Registry{db: db, ttl: ttl}
}

// JobTables returns the known job partition tables, oldest year first. The
// cached list is served until the TTL lapses; new tables created through
// EnsureJobTable appear immediately.
func (r *Registry) JobTables() ([]string, error) {
	r.mu.RLock()
	fresh := time.Since(r.refreshedAt) < r.ttl && r.jobTables != nil
	tables := r.jobTables
	r.mu.RUnlock()

	if fresh {
		return append([]string(nil), tables...), nil
	}
	if err := r.Refresh(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.jobTables...), nil
}

// Refresh re-reads the live table list. Only names matching jobs_YYYY are
// kept; the legacy unpartitioned "jobs" table never qualifies.
func (r *Registry) Refresh() error {
	all, err := r.db.Migrator().GetTables()
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	var jobTables []string
	for _, name := range all {
		if _, ok := JobTableYear(name); ok {
			jobTables = append(jobTables, name)
		}
	}
	sort.Strings(jobTables)
	if jobTables == nil {
		jobTables = []string{}
	}

	r.mu.Lock()
	r.jobTables = jobTables
	r.refreshedAt = time.Now()
	r.mu.Unlock()
	return nil
}

// EnsureJobTable creates the partition table for the given year if it does
// not exist yet and returns its name. Creation is idempotent.
func (r *Registry) EnsureJobTable(year int) (string, error) {
	name := JobTable(year)

	r.mu.RLock()
	known := contains(r.jobTables, name)
	r.mu.RUnlock()
	if known {
		return name, nil
	}

	if !r.db.Migrator().HasTable(name) {
		if err := r.db.Table(name).AutoMigrate(&models.Job{}); err != nil {
			return "", fmt.Errorf("create partition %s: %w", name, err)
		}
		// Index names are schema-wide in Postgres, so they carry the
		// partition name rather than a gorm tag.
		stmts := []string{
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_employer_id ON %s (employer_id)", name, name),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_posted_at ON %s (posted_at)", name, name),
		}
		for _, stmt := range stmts {
			if err := r.db.Exec(stmt).Error; err != nil {
				return "", fmt.Errorf("index partition %s: %w", name, err)
			}
		}
	}

	if err := r.Refresh(); err != nil {
		return "", err
	}
	return name, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
