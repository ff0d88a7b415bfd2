package database

import (
	"context"
	"log"
	"sync"

	"hospital-directory-backend/internal/config"
	"hospital-directory-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	connectOnce sync.Once
	client      *mongo.Client
	database    *mongo.Database
)

// Connect initializes the process-wide MongoDB connection and returns the
// database handle. Repeated calls are idempotent and reuse the same client;
// the driver owns pooling and safe concurrent use. The first call is fatal
// if the store is unreachable.
func Connect(cfg *config.Config) *mongo.Database {
	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
		defer cancel()

		var err error
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		// Test the connection
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		database = client.Database(cfg.Database.Database)

		if err := ensureHospitalIndexes(ctx, database); err != nil {
			log.Fatalf("Failed to create hospital indexes: %v", err)
		}

		log.Println("Successfully connected to database")
	})

	return database
}

// Client returns the shared client, for ping checks and shutdown. Nil until
// Connect has run.
func Client() *mongo.Client {
	return client
}

// Disconnect closes the shared client on shutdown.
func Disconnect(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from database: %v", err)
	}
}

// ensureHospitalIndexes creates the structural indexes on the hospitals
// collection: the unique (name, address) identity constraint and the
// open/emergency query indexes.
func ensureHospitalIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(models.Hospital{}.CollectionName())

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "address", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "openNow", Value: 1}}},
		{Keys: bson.D{{Key: "emergency", Value: 1}}},
		{Keys: bson.D{{Key: "openNow", Value: 1}, {Key: "emergency", Value: 1}}},
	}

	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
