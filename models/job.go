package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobStatus string

const (
	JobActive    JobStatus = "active"
	JobOnHold    JobStatus = "on-hold"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobActive, JobOnHold, JobCompleted, JobCancelled:
		return true
	}
	return false
}

// Job is a date-tracked engagement owned by a ProjectManager. Date is
// the engagement's own calendar date; consumers fall back to CreatedAt
// for display when it is absent.
type Job struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	ProjectManagerID string             `json:"projectManagerId" bson:"projectManagerId"`
	Status           JobStatus          `json:"status" bson:"status"`
	Date             *time.Time         `json:"date,omitempty" bson:"date,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type JobInput struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ProjectManagerID string     `json:"projectManagerId"`
	Status           JobStatus  `json:"status"`
	Date             *time.Time `json:"date"`
}

func (in *JobInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ProjectManagerID = strings.TrimSpace(in.ProjectManagerID)
	if in.Status == "" {
		in.Status = JobActive
	}
}

func (in *JobInput) Validate() error {
	if in.Title == "" {
		return newValidationError("title", "Title is required")
	}
	if in.ProjectManagerID == "" {
		return newValidationError("projectManagerId", "Project Manager ID is required")
	}
	if !in.Status.Valid() {
		return newValidationError("status", "Invalid job status: %s", in.Status)
	}
	return nil
}

type JobPatch struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	ProjectManagerID *string    `json:"projectManagerId"`
	Status           *JobStatus `json:"status"`
	Date             *time.Time `json:"date"`
}

func (p *JobPatch) Normalize() {
	trimPtr(p.Title)
	trimPtr(p.Description)
	trimPtr(p.ProjectManagerID)
}

func (p *JobPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return newValidationError("title", "Title is required")
	}
	if p.ProjectManagerID != nil && *p.ProjectManagerID == "" {
		return newValidationError("projectManagerId", "Project Manager ID is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return newValidationError("status", "Invalid job status: %s", *p.Status)
	}
	return nil
}
