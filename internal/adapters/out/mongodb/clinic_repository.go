package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClinicMongoRepository struct {
	collection *mongo.Collection
	logger     out.LoggerPort
}

func NewClinicMongoRepository(db *mongo.Database, collectionName string, logger out.LoggerPort) *ClinicMongoRepository {
	return &ClinicMongoRepository{
		collection: db.Collection(collectionName),
		logger:     logger.WithModule("ClinicMongoRepository"),
	}
}

func (r *ClinicMongoRepository) FindByID(ctx context.Context, clinicID string) (*domain.Clinic, error) {
	// Невалидный ObjectID не может принадлежать существующей клинике
	objectID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		r.logger.Debug("mongodb.clinic.invalid_id", out.LogFields{
			"clinicId": clinicID,
		})
		return nil, nil
	}

	var document clinicDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error("mongodb.clinic.find_failed", out.LogFields{
			"clinicId": clinicID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("mongodb.clinic.find_failed: %w", err)
	}

	return document.toDomain(), nil
}
