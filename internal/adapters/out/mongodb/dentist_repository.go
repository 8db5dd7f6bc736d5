package mongodb

import (
	"context"
	"fmt"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DentistMongoRepository struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewDentistMongoRepository(db *mongo.Database, collectionName string, logger out.LoggerPort) *DentistMongoRepository {
	return &DentistMongoRepository{
		collection: db.Collection(collectionName),
		logger:     logger.WithModule("DentistMongoRepository"),
	}
}

// FindByClinic returns the dentists of a clinic ordered by _id, so the order of
// generated slots is stable between requests.
func (r *DentistMongoRepository) FindByClinic(ctx context.Context, clinicID string) ([]domain.Dentist, error) {
	objectID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return []domain.Dentist{}, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"clinic": objectID}, findOptions)
	if err != nil {
		r.logger.Error("mongodb.dentists.find_failed", out.LogFields{
			"clinicId": clinicID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("mongodb.dentists.find_failed: %w", err)
	}

	var documents []dentistDocument
	if err := cursor.All(ctx, &documents); err != nil {
		r.logger.Error("mongodb.dentists.iterate_failed", out.LogFields{
			"clinicId": clinicID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("mongodb.dentists.iterate_failed: %w", err)
	}

	dentists := make([]domain.Dentist, 0, len(documents))
	for _, document := range documents {
		dentists = append(dentists, document.toDomain())
	}

	return dentists, nil
}
