package repository

import (
	"context"
	"fmt"
	"time"

	"recruithub/internal/core"
	client "recruithub/internal/database/client"
	"recruithub/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mongoClient *client.MongoClient) *UserRepository {
	repository := &UserRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBRecruithub)).Collection(string(core.MongoCollectionUsers)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.UserIndexes)
	return repository
}

func (repository *UserRepository) Create(contextValue context.Context, user *model.User) (_ *model.User, returnedError error) {
	nowUTC := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, user)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	user.ID = objectID
	return user, nil
}

func (repository *UserRepository) GetByID(contextValue context.Context, userIdentifier primitive.ObjectID) (_ *model.User, returnedError error) {
	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": userIdentifier}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

func (repository *UserRepository) GetByEmail(contextValue context.Context, email string) (_ *model.User, returnedError error) {
	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"email": email}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

func (repository *UserRepository) List(contextValue context.Context, listOptions core.ListOptions) (_ []*model.User, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if listOptions.Size > 0 {
		findOptions.SetLimit(listOptions.Size)
		if listOptions.Page > 0 {
			findOptions.SetSkip((listOptions.Page - 1) * listOptions.Size)
		}
	}

	cursor, findError := repository.collection.Find(contextValue, listOptions.Filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.User
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

func (repository *UserRepository) Count(contextValue context.Context, filter bson.M) (int64, error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *UserRepository) UpdateByID(contextValue context.Context, userIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": userIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *UserRepository) DeleteByID(contextValue context.Context, userIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": userIdentifier})
	return returnedError
}
