package handlers

import (
	"context"
	"net/http"
	"time"

	"pm-tracker/microservices/tracking-service/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores with the same contract as the Mongo-backed
// services: normalize + validate before storing, newest-first lists,
// ErrNotFound for absent ids. A non-nil forced error short-circuits
// every call, standing in for a failing or tripped backend.

type fakeManagerStore struct {
	managers []models.ProjectManager
	forced   error
}

func (f *fakeManagerStore) List(ctx context.Context) ([]models.ProjectManager, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	out := []models.ProjectManager{}
	out = append(out, f.managers...)
	return out, nil
}

func (f *fakeManagerStore) GetByID(ctx context.Context, id string) (*models.ProjectManager, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	for i := range f.managers {
		if f.managers[i].ID.Hex() == id {
			manager := f.managers[i]
			return &manager, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeManagerStore) Create(ctx context.Context, in models.ProjectManagerInput) (*models.ProjectManager, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	manager := models.ProjectManager{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.managers = append([]models.ProjectManager{manager}, f.managers...)
	return &manager, nil
}

func (f *fakeManagerStore) Update(ctx context.Context, id string, patch models.ProjectManagerPatch) (*models.ProjectManager, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	for i := range f.managers {
		if f.managers[i].ID.Hex() == id {
			if patch.Name != nil {
				f.managers[i].Name = *patch.Name
			}
			if patch.Email != nil {
				f.managers[i].Email = *patch.Email
			}
			if patch.Phone != nil {
				f.managers[i].Phone = *patch.Phone
			}
			f.managers[i].UpdatedAt = time.Now().UTC()
			manager := f.managers[i]
			return &manager, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeManagerStore) Delete(ctx context.Context, id string) error {
	if f.forced != nil {
		return f.forced
	}
	for i := range f.managers {
		if f.managers[i].ID.Hex() == id {
			f.managers = append(f.managers[:i], f.managers[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeWorkStore struct {
	items  []models.Work
	forced error
}

func (f *fakeWorkStore) List(ctx context.Context, pmID string) ([]models.Work, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	out := []models.Work{}
	for _, item := range f.items {
		if pmID == "" || item.ProjectManagerID == pmID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeWorkStore) GetByID(ctx context.Context, id string) (*models.Work, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeWorkStore) Create(ctx context.Context, in models.WorkInput) (*models.Work, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := models.Work{
		ID:               primitive.NewObjectID(),
		Title:            in.Title,
		Description:      in.Description,
		ProjectManagerID: in.ProjectManagerID,
		Status:           in.Status,
		DueDate:          in.DueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	f.items = append([]models.Work{item}, f.items...)
	return &item, nil
}

func (f *fakeWorkStore) Update(ctx context.Context, id string, patch models.WorkPatch) (*models.Work, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			if patch.Title != nil {
				f.items[i].Title = *patch.Title
			}
			if patch.Description != nil {
				f.items[i].Description = *patch.Description
			}
			if patch.ProjectManagerID != nil {
				f.items[i].ProjectManagerID = *patch.ProjectManagerID
			}
			if patch.Status != nil {
				f.items[i].Status = *patch.Status
			}
			if patch.DueDate != nil {
				f.items[i].DueDate = patch.DueDate
			}
			f.items[i].UpdatedAt = time.Now().UTC()
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeWorkStore) Delete(ctx context.Context, id string) error {
	if f.forced != nil {
		return f.forced
	}
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeJobStore struct {
	jobs   []models.Job
	forced error
}

func (f *fakeJobStore) List(ctx context.Context, pmID string) ([]models.Job, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	out := []models.Job{}
	for _, job := range f.jobs {
		if pmID == "" || job.ProjectManagerID == pmID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (f *fakeJobStore) GetByID(ctx context.Context, id string) (*models.Job, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	for i := range f.jobs {
		if f.jobs[i].ID.Hex() == id {
			job := f.jobs[i]
			return &job, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeJobStore) Create(ctx context.Context, in models.JobInput) (*models.Job, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	job := models.Job{
		ID:               primitive.NewObjectID(),
		Title:            in.Title,
		Description:      in.Description,
		ProjectManagerID: in.ProjectManagerID,
		Status:           in.Status,
		Date:             in.Date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	f.jobs = append([]models.Job{job}, f.jobs...)
	return &job, nil
}

func (f *fakeJobStore) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	if f.forced != nil {
		return nil, f.forced
	}
	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	for i := range f.jobs {
		if f.jobs[i].ID.Hex() == id {
			if patch.Title != nil {
				f.jobs[i].Title = *patch.Title
			}
			if patch.Description != nil {
				f.jobs[i].Description = *patch.Description
			}
			if patch.ProjectManagerID != nil {
				f.jobs[i].ProjectManagerID = *patch.ProjectManagerID
			}
			if patch.Status != nil {
				f.jobs[i].Status = *patch.Status
			}
			if patch.Date != nil {
				f.jobs[i].Date = patch.Date
			}
			f.jobs[i].UpdatedAt = time.Now().UTC()
			job := f.jobs[i]
			return &job, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeJobStore) Delete(ctx context.Context, id string) error {
	if f.forced != nil {
		return f.forced
	}
	for i := range f.jobs {
		if f.jobs[i].ID.Hex() == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// newTestRouter wires the handlers onto the same routes main registers.
func newTestRouter(managers ManagerStore, work WorkStore, jobs JobStore) *mux.Router {
	r := mux.NewRouter()

	if managers != nil {
		h := NewManagerHandler(managers)
		r.HandleFunc("/api/project-managers", h.List).Methods(http.MethodGet)
		r.HandleFunc("/api/project-managers", h.Create).Methods(http.MethodPost)
		r.HandleFunc("/api/project-managers/{id}", h.GetByID).Methods(http.MethodGet)
		r.HandleFunc("/api/project-managers/{id}", h.Update).Methods(http.MethodPut)
		r.HandleFunc("/api/project-managers/{id}", h.Delete).Methods(http.MethodDelete)
	}
	if work != nil {
		h := NewWorkHandler(work)
		r.HandleFunc("/api/work", h.List).Methods(http.MethodGet)
		r.HandleFunc("/api/work", h.Create).Methods(http.MethodPost)
		r.HandleFunc("/api/work/{id}", h.GetByID).Methods(http.MethodGet)
		r.HandleFunc("/api/work/{id}", h.Update).Methods(http.MethodPut)
		r.HandleFunc("/api/work/{id}", h.Delete).Methods(http.MethodDelete)
	}
	if jobs != nil {
		h := NewJobHandler(jobs)
		r.HandleFunc("/api/jobs", h.List).Methods(http.MethodGet)
		r.HandleFunc("/api/jobs", h.Create).Methods(http.MethodPost)
		r.HandleFunc("/api/jobs/{id}", h.GetByID).Methods(http.MethodGet)
		r.HandleFunc("/api/jobs/{id}", h.Update).Methods(http.MethodPut)
		r.HandleFunc("/api/jobs/{id}", h.Delete).Methods(http.MethodDelete)
	}

	return r
}
