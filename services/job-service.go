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

// JobService is the store for the jobs collection.
type JobService struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewJobService(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *JobService {
	return &JobService{collection: collection, breaker: breaker}
}

// List returns jobs newest-first, optionally restricted to one
// manager's records.
func (s *JobService) List(ctx context.Context, pmID string) ([]models.Job, error) {
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

		jobs := []models.Job{}
		for cursor.Next(ctx) {
			var job models.Job
			if err := cursor.Decode(&job); err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return jobs, nil
	})
	if err != nil {
		return nil, backendError(err)
	}
	return result.([]models.Job), nil
}

func (s *JobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var job models.Job
		err := s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&job)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return (*models.Job)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		return &job, nil
	})
	if err != nil {
		return nil, backendError(err)
	}

	job := result.(*models.Job)
	if job == nil {
		return nil, models.ErrNotFound
	}
	return job, nil
}

func (s *JobService) Create(ctx context.Context, in models.JobInput) (*models.Job, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &models.Job{
		ID:               primitive.NewObjectID(),
		Title:            in.Title,
		Description:      in.Description,
		ProjectManagerID: in.ProjectManagerID,
		Status:           in.Status,
		Date:             in.Date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, job)
	})
	if err != nil {
		return nil, backendError(err)
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
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
	if patch.Date != nil {
		set["date"] = *patch.Date
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var updated models.Job
		err := s.collection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": objectID},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return (*models.Job)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		return &updated, nil
	})
	if err != nil {
		return nil, backendError(err)
	}

	updated := result.(*models.Job)
	if updated == nil {
		return nil, models.ErrNotFound
	}
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
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
