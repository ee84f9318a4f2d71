package main

import (
	"context"
	"log"
	"time"

	"aidentify-service/internal/app/config"
	"aidentify-service/internal/app/drivers/database"
	"aidentify-service/internal/app/drivers/logger"
	"aidentify-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Run once after deployment to ensure the activity log indexes exist.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewBootstrapLogger(internalConfig)
	mongoDB := database.NewMongoDB(driverConfig, bootstrapLog)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := mongoDB.Database(driverConfig.MongoDB.DbName).Collection(constvars.ActivityCollectionName)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "operator_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	log.Printf("Created %d indexes: %v\n", len(names), names)

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting: %v", err)
	}
}
