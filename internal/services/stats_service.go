package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/partition"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// JobStats is the debug summary of the job partition set.
type JobStats struct {
	TotalJobs  int64                      `json:"total_jobs"`
	Partitions []models.JobPartitionStats `json:"partitions"`
}

// WorkerPartitionInfo explains where a worker ID routes and why.
type WorkerPartitionInfo struct {
	WorkerID            string `json:"worker_id"`
	PartitionNumber     int    `json:"partition_number"`
	PartitionCollection string `json:"partition_collection"`
	HashFunction        string `json:"hash_function"`
}

// ApplicationStats is the admin dashboard application summary.
type ApplicationStats struct {
	Total    int64                           `json:"total"`
	ByStatus []models.ApplicationStatusCount `json:"by_status"`
}

type StatsService interface {
	JobStats() (*JobStats, error)
	JobPartitions() ([]models.JobPartitionStats, error)
	WorkerPartition(workerID string) *WorkerPartitionInfo
	WorkerInfo(workerID string) (*models.Worker, *WorkerPartitionInfo, error)
	ApplicationStats() (*ApplicationStats, error)
}

type StatsServiceImpl struct {
	jobs         repositories.JobRepository
	workers      repositories.WorkerRepository
	applications repositories.ApplicationRepository
}

func NewStatsService(
	jobs repositories.JobRepository,
	workers repositories.WorkerRepository,
	applications repositories.ApplicationRepository,
) StatsService {
	return &StatsServiceImpl{jobs: jobs, workers: workers, applications: applications}
}

func (s *StatsServiceImpl) JobStats() (*JobStats, error) {
	partitions, err := s.jobs.PartitionStats()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	var total int64
	for _, p := range partitions {
		total += p.DocumentCount
	}
	return &JobStats{TotalJobs: total, Partitions: partitions}, nil
}

func (s *StatsServiceImpl) JobPartitions() ([]models.JobPartitionStats, error) {
	partitions, err := s.jobs.PartitionStats()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return partitions, nil
}

// WorkerPartition computes the routing for an ID without touching storage:
// the answer is a pure function of the ID.
func (s *StatsServiceImpl) WorkerPartition(workerID string) *WorkerPartitionInfo {
	return &WorkerPartitionInfo{
		WorkerID:            workerID,
		PartitionNumber:     partition.WorkerPartition(workerID),
		PartitionCollection: partition.WorkerTable(workerID),
		HashFunction:        "fnv1a_32 % 8",
	}
}

// WorkerInfo resolves the stored profile alongside its computed routing,
// so a mismatch (a legacy row living off-partition) is visible.
func (s *StatsServiceImpl) WorkerInfo(workerID string) (*models.Worker, *WorkerPartitionInfo, error) {
	worker, err := s.workers.FindByID(workerID)
	if errors.Is(err, repositories.ErrWorkerNotFound) {
		return nil, nil, apperrors.NotFound("worker", "Worker not found")
	}
	if err != nil {
		return nil, nil, apperrors.StorageError(err)
	}
	return worker, s.WorkerPartition(workerID), nil
}

func (s *StatsServiceImpl) ApplicationStats() (*ApplicationStats, error) {
	byStatus, err := s.applications.StatusCounts()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	var total int64
	for _, c := range byStatus {
		total += c.Count
	}
	return &ApplicationStats{Total: total, ByStatus: byStatus}, nil
}
