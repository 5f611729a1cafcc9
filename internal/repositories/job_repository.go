package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard_backend/internal/fanout"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/partition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

const (
	matchedJobsCap = 100
	searchJobsCap  = 50
)

// JobPatch is a sparse update: nil fields are left untouched.
type JobPatch struct {
	Title          *string
	RequiredSkills *string
	Description    *string
	SalaryMin      *float64
	SalaryMax      *float64
	Location       *string
	Status         *models.JobStatus
}

func (p JobPatch) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.RequiredSkills != nil {
		out["required_skills"] = *p.RequiredSkills
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.SalaryMin != nil {
		out["salary_min"] = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		out["salary_max"] = *p.SalaryMax
	}
	if p.Location != nil {
		out["location"] = *p.Location
	}
	if p.Status != nil {
		out["status"] = *p.Status
	}
	return out
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(jobID string) (*models.Job, error)
	ListByEmployer(employerID string) ([]models.Job, error)
	ListAll() ([]models.JobWithEmployer, error)
	MatchForWorker(workerID, skills, location string) ([]models.JobMatch, error)
	Search(text, location, skills string) ([]models.JobSearchResult, error)
	Update(jobID string, patch JobPatch) error
	Delete(jobID string) error
	PartitionStats() ([]models.JobPartitionStats, error)
}

type JobRepositoryImpl struct {
	db       *gorm.DB
	registry *partition.Registry
}

func NewJobRepository(db *gorm.DB, registry *partition.Registry) JobRepository {
	return &JobRepositoryImpl{db: db, registry: registry}
}

// Create writes the job into the partition named by the year of PostedAt,
// creating the year table on first use. Always a fresh insert; postings
// are never deduplicated.
func (r *JobRepositoryImpl) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	table, err := r.registry.EnsureJobTable(job.PostedAt.Year())
	if err != nil {
		return err
	}
	return r.db.Table(table).Create(job).Error
}

// FindByID probes the year partitions in order. The posting year is not
// recoverable from the ID, so a point lookup is a sequential scan that
// stops at the first hit.
func (r *JobRepositoryImpl) FindByID(jobID string) (*models.Job, error) {
	tables, err := r.registry.JobTables()
	if err != nil {
		return nil, err
	}
	hit, err := fanout.First(tables, func(table string) (*models.Job, error) {
		var job models.Job
		err := r.db.Table(table).Where("id = ?", jobID).Take(&job).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &job, nil
	})
	if err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, ErrJobNotFound
	}
	return hit, nil
}

// ListByEmployer fans out over every year partition, then applies a single
// global posted_at sort. Uncapped.
func (r *JobRepositoryImpl) ListByEmployer(employerID string) ([]models.Job, error) {
	tables, err := r.registry.JobTables()
	if err != nil {
		return nil, err
	}
	jobs := fanout.Scan("jobs_by_employer", tables, func(table string) ([]models.Job, error) {
		var rows []models.Job
		err := r.db.Table(table).Where("employer_id = ?", employerID).Find(&rows).Error
		return rows, err
	})
	fanout.SortByTimeDesc(jobs, func(j models.Job) time.Time { return j.PostedAt })
	return jobs, nil
}

// MatchForWorker runs the skill-match join against every year partition:
// open jobs whose required_skills contain any of the worker's skill tags
// (case-insensitive substring), joined with the employer and left-joined
// with this worker's application. The optional location filter also admits
// jobs with no location set. Merged, posted_at desc, capped at 100.
func (r *JobRepositoryImpl) MatchForWorker(workerID, skills, location string) ([]models.JobMatch, error) {
	skillTags := SplitSkills(skills)
	if len(skillTags) == 0 {
		return []models.JobMatch{}, nil
	}

	skillCond, skillArgs := anySkillCondition("j.required_skills", skillTags)

	tables, err := r.registry.JobTables()
	if err != nil {
		return nil, err
	}

	matches := fanout.Scan("matched_jobs", tables, func(table string) ([]models.JobMatch, error) {
		q := r.db.Table(table+" AS j").
			Select(`j.id AS job_id, j.title, j.location, j.posted_at,
				j.required_skills, j.description, j.salary_min, j.salary_max,
				a.application_status,
				e.company_name, e.phone AS company_phone, e.location AS company_location`).
			Joins("JOIN employers e ON e.id = j.employer_id").
			Joins("LEFT JOIN applications a ON a.job_id = j.id AND a.worker_id = ?", workerID).
			Where("j.status = ?", models.JobStatusOpen).
			Where(skillCond, skillArgs...)

		if location != "" {
			q = q.Where("(j.location = ? OR j.location IS NULL OR j.location = '')", location)
		}

		var rows []models.JobMatch
		err := q.Scan(&rows).Error
		return rows, err
	})

	fanout.SortByTimeDesc(matches, func(m models.JobMatch) time.Time { return m.PostedAt })
	return fanout.Limit(matches, matchedJobsCap), nil
}

// Search filters open jobs by free text (title, description, skills),
// location and a skill tag list, all AND-composed, joined with the
// employer. Capped at 50 after the global sort.
func (r *JobRepositoryImpl) Search(text, location, skills string) ([]models.JobSearchResult, error) {
	tables, err := r.registry.JobTables()
	if err != nil {
		return nil, err
	}

	results := fanout.Scan("search_jobs", tables, func(table string) ([]models.JobSearchResult, error) {
		q := r.db.Table(table+" AS j").
			Select(`j.id AS job_id, j.title, j.location, j.posted_at,
				j.required_skills, j.description, j.salary_min, j.salary_max,
				e.company_name`).
			Joins("JOIN employers e ON e.id = j.employer_id").
			Where("j.status = ?", models.JobStatusOpen)

		if text != "" {
			like := "%" + strings.ToLower(text) + "%"
			q = q.Where(
				"(LOWER(j.title) LIKE ? OR LOWER(j.description) LIKE ? OR LOWER(j.required_skills) LIKE ?)",
				like, like, like,
			)
		}
		if location != "" {
			q = q.Where(
				"(LOWER(j.location) LIKE ? OR j.location IS NULL OR j.location = '')",
				"%"+strings.ToLower(location)+"%",
			)
		}
		if tags := SplitSkills(skills); len(tags) > 0 {
			cond, args := anySkillCondition("j.required_skills", tags)
			q = q.Where(cond, args...)
		}

		var rows []models.JobSearchResult
		err := q.Scan(&rows).Error
		return rows, err
	})

	fanout.SortByTimeDesc(results, func(s models.JobSearchResult) time.Time { return s.PostedAt })
	return fanout.Limit(results, searchJobsCap), nil
}

// ListAll is the admin listing: every job in every partition joined with
// its employer, posted_at desc, uncapped.
func (r *JobRepositoryImpl) ListAll() ([]models.JobWithEmployer, error) {
	tables, err := r.registry.JobTables()
	if err != nil {
		return nil, err
	}

	jobs := fanout.Scan("admin_list_jobs", tables, func(table string) ([]models.JobWithEmployer, error) {
		var rows []models.JobWithEmployer
		err := r.db.Table(table+" AS j").
			Select(`j.id AS job_id, j.employer_id, j.title, j.required_skills,
				j.description, j.salary_min, j.salary_max, j.location, j.status,
				j.posted_at, e.company_name`).
			Joins("JOIN employers e ON e.id = j.employer_id").
			Scan(&rows).Error
		return rows, err
	})

	fanout.SortByTimeDesc(jobs, func(j models.JobWithEmployer) time.Time { return j.PostedAt })
	return jobs, nil
}

// Update locates the owning partition by probing for the ID, then applies
// the sparse patch there. The year is not known a priori without the
// record, so the probe is unavoidable.
func (r *JobRepositoryImpl) Update(jobID string, patch JobPatch) error {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = nowFunc()

	table, err := r.locate(jobID)
	if err != nil {
		return err
	}

	result := r.db.Table(table).Where("id = ?", jobID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete removes the job from whichever partition holds it. Exactly one
// partition deleting a row is the expected outcome; none means the job
// does not exist. Application cascade is the caller's responsibility.
func (r *JobRepositoryImpl) Delete(jobID string) error {
	tables, err := r.registry.JobTables()
	if err != nil {
		return err
	}
	for _, table := range tables {
		result := r.db.Table(table).Where("id = ?", jobID).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
	}
	return ErrJobNotFound
}

// PartitionStats reports each year partition and its row count, oldest
// year first.
func (r *JobRepositoryImpl) PartitionStats() ([]models.JobPartitionStats, error) {
	tables, err := r.registry.JobTables()
	if err != nil {
		return nil, err
	}

	stats := make([]models.JobPartitionStats, 0, len(tables))
	for _, table := range tables {
		year, ok := partition.JobTableYear(table)
		if !ok {
			continue
		}
		var count int64
		if err := r.db.Table(table).Count(&count).Error; err != nil {
			return nil, err
		}
		stats = append(stats, models.JobPartitionStats{
			Collection:    table,
			Year:          year,
			DocumentCount: count,
		})
	}
	return stats, nil
}

func (r *JobRepositoryImpl) locate(jobID string) (string, error) {
	tables, err := r.registry.JobTables()
	if err != nil {
		return "", err
	}
	for _, table := range tables {
		var count int64
		if err := r.db.Table(table).Where("id = ?", jobID).Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return table, nil
		}
	}
	return "", ErrJobNotFound
}

// anySkillCondition builds an OR group of case-insensitive substring
// matches, one per skill tag.
func anySkillCondition(column string, tags []string) (string, []interface{}) {
	conds := make([]string, len(tags))
	args := make([]interface{}, len(tags))
	for i, tag := range tags {
		conds[i] = fmt.Sprintf("LOWER(%s) LIKE ?", column)
		args[i] = "%" + tag + "%"
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}
