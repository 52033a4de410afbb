package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectManager owns Work and Job records through their
// projectManagerId reference. Deleting a manager does not touch its
// dependents; the reference is used only for filtering.
type ProjectManager struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProjectManagerInput is the create payload. Unknown fields in the
// request body are dropped by the typed decode.
type ProjectManagerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Normalize trims all string fields. Applied before validation and
// before storage.
func (in *ProjectManagerInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in *ProjectManagerInput) Validate() error {
	if in.Name == "" {
		return newValidationError("name", "Name is required")
	}
	return nil
}

// ProjectManagerPatch is the partial-update payload. A nil field is
// absent from the request and left untouched.
type ProjectManagerPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (p *ProjectManagerPatch) Normalize() {
	trimPtr(p.Name)
	trimPtr(p.Email)
	trimPtr(p.Phone)
}

func (p *ProjectManagerPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return newValidationError("name", "Name is required")
	}
	return nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
