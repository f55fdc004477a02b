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

type RecruitmentFormRepository struct {
	collection *mongo.Collection
}

func NewRecruitmentFormRepository(mongoClient *client.MongoClient) *RecruitmentFormRepository {
	repository := &RecruitmentFormRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBRecruithub)).Collection(string(core.MongoCollectionRecruitmentForms)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.RecruitmentFormIndexes)
	return repository
}

func (repository *RecruitmentFormRepository) Create(contextValue context.Context, form *model.RecruitmentForm) (_ *model.RecruitmentForm, returnedError error) {
	nowUTC := time.Now().UTC()
	if form.ID.IsZero() {
		form.ID = primitive.NewObjectID()
	}
	form.CreatedAt = nowUTC
	form.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, form)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	form.ID = objectID
	return form, nil
}

func (repository *RecruitmentFormRepository) GetByID(contextValue context.Context, formIdentifier primitive.ObjectID) (_ *model.RecruitmentForm, returnedError error) {
	var form model.RecruitmentForm
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": formIdentifier}).Decode(&form); returnedError != nil {
		return nil, returnedError
	}
	return &form, nil
}

func (repository *RecruitmentFormRepository) List(contextValue context.Context, listOptions core.ListOptions) (_ []*model.RecruitmentForm, returnedError error) {
	sort := listOptions.Sort
	if len(sort) == 0 {
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}
	findOptions := options.Find().SetSort(sort)
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

	var results []*model.RecruitmentForm
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

func (repository *RecruitmentFormRepository) Count(contextValue context.Context, filter bson.M) (int64, error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *RecruitmentFormRepository) UpdateByID(contextValue context.Context, formIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": formIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *RecruitmentFormRepository) DeleteByID(contextValue context.Context, formIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": formIdentifier})
	return returnedError
}

// CountByStatus 依狀態 groupBy 計數
func (repository *RecruitmentFormRepository) CountByStatus(contextValue context.Context) (_ []model.StatusCount, returnedError error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []model.StatusCount
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

// AgeBuckets 依出生日期分齡計數（<25 / 25-34 / 35-44 / 45+）
func (repository *RecruitmentFormRepository) AgeBuckets(contextValue context.Context) (_ []model.AgeBucketCount, returnedError error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.M{
			"age": bson.M{"$dateDiff": bson.M{
				"startDate": "$birthDate",
				"endDate":   "$$NOW",
				"unit":      "year",
			}},
		}}},
		bson.D{{Key: "$bucket", Value: bson.M{
			"groupBy":    "$age",
			"boundaries": bson.A{0, 25, 35, 45, 200},
			"default":    "unknown",
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var raw []struct {
		Boundary any   `bson:"_id"`
		Count    int64 `bson:"count"`
	}
	if returnedError = cursor.All(contextValue, &raw); returnedError != nil {
		return nil, returnedError
	}

	labels := map[string]string{"0": "<25", "25": "25-34", "35": "35-44", "45": "45+"}
	results := make([]model.AgeBucketCount, 0, len(raw))
	for _, row := range raw {
		key := fmt.Sprintf("%v", row.Boundary)
		label, ok := labels[key]
		if !ok {
			label = key
		}
		results = append(results, model.AgeBucketCount{Bucket: label, Count: row.Count})
	}
	return results, nil
}

// MonthlyTrend 近 N 個月的投遞量，依 "YYYY-MM" groupBy
func (repository *RecruitmentFormRepository) MonthlyTrend(contextValue context.Context, months int) (_ []model.MonthCount, returnedError error) {
	since := time.Now().UTC().AddDate(0, -months, 0)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []model.MonthCount
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}
