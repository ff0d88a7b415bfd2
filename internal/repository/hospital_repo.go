package repository

import (
	"context"
	"errors"
	"time"

	"hospital-directory-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalRepository struct {
	collection *mongo.Collection
}

func NewHospitalRepo(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{
		collection: db.Collection(models.Hospital{}.CollectionName()),
	}
}

// parseID maps a path id to an ObjectID. A malformed id can never name a
// record, so it is reported as not found rather than a distinct error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrHospitalNotFound
	}
	return oid, nil
}

// FindAll retrieves all hospitals, newest first
func (r *HospitalRepository) FindAll(ctx context.Context) ([]models.Hospital, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	// Empty slice, not nil, so an empty collection serializes as [].
	hospitals := []models.Hospital{}
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// Insert writes a new hospital record, assigning its id and timestamps.
// A (name, address) collision with the unique index is reported as
// models.ErrDuplicateHospital.
func (r *HospitalRepository) Insert(ctx context.Context, hospital *models.Hospital) error {
	now := time.Now().UTC()
	hospital.CreatedAt = now
	hospital.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, hospital)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateHospital
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		hospital.ID = oid
	}
	return nil
}

// Replace overwrites all mutable fields of an existing record and returns
// the post-update document. The id, createdAt and updatedAt stay store-owned.
func (r *HospitalRepository) Replace(ctx context.Context, id string, hospital *models.Hospital) (*models.Hospital, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":          hospital.Name,
		"address":       hospital.Address,
		"phone":         hospital.Phone,
		"beds":          hospital.Beds,
		"availableBeds": hospital.AvailableBeds,
		"emergency":     hospital.Emergency,
		"openNow":       hospital.OpenNow,
		"rating":        hospital.Rating,
		"specialties":   hospital.Specialties,
		"waitTime":      hospital.WaitTime,
		"distance":      hospital.Distance,
		"updatedAt":     time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Hospital
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrHospitalNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicateHospital
		}
		return nil, err
	}
	return &updated, nil
}

// SetOpenNow flips only the open/closed flag. No other field is touched, so
// a record with stale unrelated data can still have its status changed.
func (r *HospitalRepository) SetOpenNow(ctx context.Context, id string, openNow bool) (*models.Hospital, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"openNow":   openNow,
		"updatedAt": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Hospital
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrHospitalNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a record by id. Deleting an unknown id reports not found
// and leaves the collection unchanged.
func (r *HospitalRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrHospitalNotFound
	}
	return nil
}
