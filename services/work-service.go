package services

import (
	"context"
	"errors"
	"time"

	"pm-tracker/microservices/tracking-service/models"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorkService is the store for the work collection.
type WorkService struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewWorkService(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *WorkService {
	return &WorkService{collection: collection, breaker: breaker}
}

// List returns work records newest-first. A non-empty pmID restricts
// the result to that manager's records; the id is matched as an opaque
// string and is not checked against the managers collection.
func (s *WorkService) List(ctx context.Context, pmID string) ([]models.Work, error) {
	filter := bson.M{}
	if pmID != "" {
		filter["projectManagerId"] = pmID
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
		cursor, err := s.collection.Find(ctx, filter, findOpts)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		work := []models.Work{}
		for cursor.Next(ctx) {
			var item models.Work
			if err := cursor.Decode(&item); err != nil {
				return nil, err
			}
			work = append(work, item)
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return work, nil
	})
	if err != nil {
		return nil, backendError(err)
	}
	return result.([]models.Work), nil
}

func (s *WorkService) GetByID(ctx context.Context, id string) (*models.Work, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var item models.Work
		err := s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&item)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return (*models.Work)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		return &item, nil
	})
	if err != nil {
		return nil, backendError(err)
	}

	item := result.(*models.Work)
	if item == nil {
		return nil, models.ErrNotFound
	}
	return item, nil
}

func (s *WorkService) Create(ctx context.Context, in models.WorkInput) (*models.Work, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &models.Work{
		ID:               primitive.NewObjectID(),
		Title:            in.Title,
		Description:      in.Description,
		ProjectManagerID: in.ProjectManagerID,
		Status:           in.Status,
		DueDate:          in.DueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, item)
	})
	if err != nil {
		return nil, backendError(err)
	}
	return item, nil
}

func (s *WorkService) Update(ctx context.Context, id string, patch models.WorkPatch) (*models.Work, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ProjectManagerID != nil {
		set["projectManagerId"] = *patch.ProjectManagerID
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.DueDate != nil {
		set["dueDate"] = *patch.DueDate
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var updated models.Work
		err := s.collection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": objectID},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return (*models.Work)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		return &updated, nil
	})
	if err != nil {
		return nil, backendError(err)
	}

	updated := result.(*models.Work)
	if updated == nil {
		return nil, models.ErrNotFound
	}
	return updated, nil
}

func (s *WorkService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	})
	if err != nil {
		return backendError(err)
	}

	if result.(*mongo.DeleteResult).DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
