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

// ManagerService is the store for the projectManagers collection.
// Deleting a manager performs no cascade: its Work and Job records
// keep their projectManagerId and stay queryable.
type ManagerService struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewManagerService(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *ManagerService {
	return &ManagerService{collection: collection, breaker: breaker}
}

// List returns every manager, newest-first by creation time.
func (s *ManagerService) List(ctx context.Context) ([]models.ProjectManager, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
		cursor, err := s.collection.Find(ctx, bson.M{}, findOpts)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		managers := []models.ProjectManager{}
		for cursor.Next(ctx) {
			var manager models.ProjectManager
			if err := cursor.Decode(&manager); err != nil {
				return nil, err
			}
			managers = append(managers, manager)
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return managers, nil
	})
	if err != nil {
		return nil, backendError(err)
	}
	return result.([]models.ProjectManager), nil
}

func (s *ManagerService) GetByID(ctx context.Context, id string) (*models.ProjectManager, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var manager models.ProjectManager
		err := s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&manager)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return (*models.ProjectManager)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		return &manager, nil
	})
	if err != nil {
		return nil, backendError(err)
	}

	manager := result.(*models.ProjectManager)
	if manager == nil {
		return nil, models.ErrNotFound
	}
	return manager, nil
}

func (s *ManagerService) Create(ctx context.Context, in models.ProjectManagerInput) (*models.ProjectManager, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	manager := &models.ProjectManager{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, manager)
	})
	if err != nil {
		return nil, backendError(err)
	}
	return manager, nil
}

// Update applies the fields present in the patch and returns the
// post-update record.
func (s *ManagerService) Update(ctx context.Context, id string, patch models.ProjectManagerPatch) (*models.ProjectManager, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var updated models.ProjectManager
		err := s.collection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": objectID},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return (*models.ProjectManager)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		return &updated, nil
	})
	if err != nil {
		return nil, backendError(err)
	}

	updated := result.(*models.ProjectManager)
	if updated == nil {
		return nil, models.ErrNotFound
	}
	return updated, nil
}

func (s *ManagerService) Delete(ctx context.Context, id string) error {
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
