package repository

import (
	"context"
	"time"

	"recruithub/internal/core"
	client "recruithub/internal/database/client"
	"recruithub/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HiringPlanRepository struct {
	collection *mongo.Collection
}

func NewHiringPlanRepository(mongoClient *client.MongoClient) *HiringPlanRepository {
	repository := &HiringPlanRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBRecruithub)).Collection(string(core.MongoCollectionHiringPlans)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.HiringPlanIndexes)
	return repository
}

// Upsert 依 department+year 寫入或覆蓋聘用目標
func (repository *HiringPlanRepository) Upsert(contextValue context.Context, plan *model.HiringPlan) (returnedError error) {
	if plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	plan.UpdatedAt = time.Now().UTC()

	filter := bson.M{"department": plan.Department, "year": plan.Year}
	update := bson.M{
		"$set": bson.M{
			"position":  plan.Position,
			"planned":   plan.Planned,
			"updatedBy": plan.UpdatedBy,
			"updatedAt": plan.UpdatedAt,
		},
		"$setOnInsert": bson.M{"_id": plan.ID, "department": plan.Department, "year": plan.Year},
	}
	_, returnedError = repository.collection.UpdateOne(contextValue, filter, update, options.Update().SetUpsert(true))
	return returnedError
}

func (repository *HiringPlanRepository) ListByYear(contextValue context.Context, year int) (_ []*model.HiringPlan, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{"year": year}, options.Find().SetSort(bson.D{{Key: "department", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.HiringPlan
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

func (repository *HiringPlanRepository) GetByDepartmentYear(contextValue context.Context, department core.Department, year int) (_ *model.HiringPlan, returnedError error) {
	var plan model.HiringPlan
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"department": department, "year": year}).Decode(&plan); returnedError != nil {
		return nil, returnedError
	}
	return &plan, nil
}
