//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"hospital-directory-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func getTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to mongodb: %v", err)
		return nil
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("Skipping integration test: cannot ping mongodb: %v", err)
		return nil
	}

	db := client.Database("hospital_directory_test")
	coll := db.Collection(models.Hospital{}.CollectionName())

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "address", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_ = coll.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})

	return db
}

func testHospital(name, address string) models.Hospital {
	return models.Hospital{
		Name:          name,
		Address:       address,
		Phone:         "555-0100",
		Beds:          100,
		AvailableBeds: 40,
		Emergency:     true,
		OpenNow:       true,
		Rating:        4.2,
		Specialties:   []models.Specialty{models.SpecialtyEmergency},
		WaitTime:      "15 mins",
		Distance:      3.2,
	}
}

func TestHospitalRepo_InsertAndFindAll(t *testing.T) {
	db := getTestDB(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	first := testHospital("St. Mary", "1 Main St")
	require.NoError(t, repo.Insert(ctx, &first))
	assert.False(t, first.ID.IsZero())
	assert.False(t, first.CreatedAt.IsZero())

	time.Sleep(5 * time.Millisecond)

	second := testHospital("General", "2 Side St")
	require.NoError(t, repo.Insert(ctx, &second))

	listed, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest first.
	assert.Equal(t, "General", listed[0].Name)
	assert.Equal(t, "St. Mary", listed[1].Name)
}

func TestHospitalRepo_DuplicateNameAddress(t *testing.T) {
	db := getTestDB(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	first := testHospital("St. Mary", "1 Main St")
	require.NoError(t, repo.Insert(ctx, &first))

	dup := testHospital("St. Mary", "1 Main St")
	dup.Phone = "555-9999"
	err := repo.Insert(ctx, &dup)
	require.ErrorIs(t, err, models.ErrDuplicateHospital)

	listed, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "555-0100", listed[0].Phone)
}

func TestHospitalRepo_SetOpenNowTouchesOnlyStatus(t *testing.T) {
	db := getTestDB(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	rec := testHospital("St. Mary", "1 Main St")
	require.NoError(t, repo.Insert(ctx, &rec))

	updated, err := repo.SetOpenNow(ctx, rec.ID.Hex(), false)
	require.NoError(t, err)

	assert.False(t, updated.OpenNow)
	assert.Equal(t, rec.Name, updated.Name)
	assert.Equal(t, rec.AvailableBeds, updated.AvailableBeds)
	assert.Equal(t, rec.WaitTime, updated.WaitTime)
	assert.True(t, updated.UpdatedAt.After(rec.UpdatedAt) || updated.UpdatedAt.Equal(rec.UpdatedAt))
}

func TestHospitalRepo_ReplaceUnknownID(t *testing.T) {
	db := getTestDB(t)
	repo := NewHospitalRepo(db)

	rec := testHospital("St. Mary", "1 Main St")
	_, err := repo.Replace(context.Background(), primitive.NewObjectID().Hex(), &rec)
	require.ErrorIs(t, err, models.ErrHospitalNotFound)
}

func TestHospitalRepo_DeleteUnknownIDLeavesCollection(t *testing.T) {
	db := getTestDB(t)
	repo := NewHospitalRepo(db)
	ctx := context.Background()

	rec := testHospital("St. Mary", "1 Main St")
	require.NoError(t, repo.Insert(ctx, &rec))

	err := repo.Delete(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, models.ErrHospitalNotFound)

	listed, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, repo.Delete(ctx, rec.ID.Hex()))

	listed, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Malformed ids also report not found.
	err = repo.Delete(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, models.ErrHospitalNotFound)
}
