package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkStatus string

const (
	WorkPending    WorkStatus = "pending"
	WorkInProgress WorkStatus = "in-progress"
	WorkCompleted  WorkStatus = "completed"
)

// Valid reports enum membership. There is no transition rule beyond
// membership: any legal status may replace any other.
func (s WorkStatus) Valid() bool {
	switch s {
	case WorkPending, WorkInProgress, WorkCompleted:
		return true
	}
	return false
}

// Work is a progress-tracked task owned by a ProjectManager. The
// projectManagerId reference is not enforced against the managers
// collection; a dangling id is accepted and stays queryable.
type Work struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	ProjectManagerID string             `json:"projectManagerId" bson:"projectManagerId"`
	Status           WorkStatus         `json:"status" bson:"status"`
	DueDate          *time.Time         `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type WorkInput struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ProjectManagerID string     `json:"projectManagerId"`
	Status           WorkStatus `json:"status"`
	DueDate          *time.Time `json:"dueDate"`
}

// Normalize trims string fields and applies the default status when
// none was provided.
func (in *WorkInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ProjectManagerID = strings.TrimSpace(in.ProjectManagerID)
	if in.Status == "" {
		in.Status = WorkPending
	}
}

func (in *WorkInput) Validate() error {
	if in.Title == "" {
		return newValidationError("title", "Title is required")
	}
	if in.ProjectManagerID == "" {
		return newValidationError("projectManagerId", "Project Manager ID is required")
	}
	if !in.Status.Valid() {
		return newValidationError("status", "Invalid work status: %s", in.Status)
	}
	return nil
}

type WorkPatch struct {
	Title            *string     `json:"title"`
	Description      *string     `json:"description"`
	ProjectManagerID *string     `json:"projectManagerId"`
	Status           *WorkStatus `json:"status"`
	DueDate          *time.Time  `json:"dueDate"`
}

func (p *WorkPatch) Normalize() {
	trimPtr(p.Title)
	trimPtr(p.Description)
	trimPtr(p.ProjectManagerID)
}

func (p *WorkPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return newValidationError("title", "Title is required")
	}
	if p.ProjectManagerID != nil && *p.ProjectManagerID == "" {
		return newValidationError("projectManagerId", "Project Manager ID is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return newValidationError("status", "Invalid work status: %s", *p.Status)
	}
	return nil
}
