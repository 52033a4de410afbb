package services

import (
	"context"
	"time"

	"pm-tracker/microservices/tracking-service/models"
)

// Listing interfaces let the export report be composed from any
// conforming stores; the Mongo-backed services above satisfy them.
type ManagerLister interface {
	List(ctx context.Context) ([]models.ProjectManager, error)
}

type WorkLister interface {
	List(ctx context.Context, pmID string) ([]models.Work, error)
}

type JobLister interface {
	List(ctx context.Context, pmID string) ([]models.Job, error)
}

// ExportService composes the manager/job summary consumed by document
// exporters. It is read-only: one listing per manager, no mutation.
type ExportService struct {
	managers ManagerLister
	work     WorkLister
	jobs     JobLister
}

func NewExportService(managers ManagerLister, work WorkLister, jobs JobLister) *ExportService {
	return &ExportService{managers: managers, work: work, jobs: jobs}
}

// Summary walks every manager and joins it with its jobs and work
// counts. Managers and their jobs come back newest-first, matching the
// stores' list ordering.
func (s *ExportService) Summary(ctx context.Context) (*models.ExportSummary, error) {
	managers, err := s.managers.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.ExportSummary{
		GeneratedAt:  time.Now().UTC(),
		ManagerCount: len(managers),
		Managers:     []models.ManagerSummary{},
	}

	for _, manager := range managers {
		pmID := manager.ID.Hex()

		jobs, err := s.jobs.List(ctx, pmID)
		if err != nil {
			return nil, err
		}
		work, err := s.work.List(ctx, pmID)
		if err != nil {
			return nil, err
		}

		summary.Managers = append(summary.Managers, models.ManagerSummary{
			Manager:   manager,
			Jobs:      jobs,
			JobCount:  len(jobs),
			WorkCount: len(work),
		})
		summary.JobCount += len(jobs)
		summary.WorkCount += len(work)
	}

	return summary, nil
}
