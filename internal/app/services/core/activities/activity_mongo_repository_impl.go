package activities

import (
	"context"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityMongoRepository struct {
	Collection *mongo.Collection
}

func NewActivityMongoRepository(db *mongo.Client, dbName string) contracts.ActivityRepository {
	return &ActivityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.ActivityCollectionName),
	}
}

func (repo *ActivityMongoRepository) Insert(ctx context.Context, activity *models.Activity) error {
	if _, err := repo.Collection.InsertOne(ctx, activity); err != nil {
		return exceptions.ErrMongoInsert(err, constvars.ActivityCollectionName)
	}
	return nil
}

func (repo *ActivityMongoRepository) FindRecent(ctx context.Context, limit int64) ([]models.Activity, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFind(err, constvars.ActivityCollectionName)
	}

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, exceptions.ErrMongoFind(err, constvars.ActivityCollectionName)
	}
	return activities, nil
}
