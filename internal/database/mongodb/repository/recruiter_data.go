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
)

type RecruiterDataRepository struct {
	collection *mongo.Collection
}

func NewRecruiterDataRepository(mongoClient *client.MongoClient) *RecruiterDataRepository {
	repository := &RecruiterDataRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBRecruithub)).Collection(string(core.MongoCollectionRecruiterData)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.RecruiterDataIndexes)
	return repository
}

// ReplaceAll 全量重建反正規化資料（排程專用）
func (repository *RecruiterDataRepository) ReplaceAll(contextValue context.Context, rows []model.RecruiterData) (returnedError error) {
	if _, returnedError = repository.collection.DeleteMany(contextValue, bson.M{}); returnedError != nil {
		return returnedError
	}
	if len(rows) == 0 {
		return nil
	}
	nowUTC := time.Now().UTC()
	documents := make([]interface{}, len(rows))
	for i := range rows {
		if rows[i].ID.IsZero() {
			rows[i].ID = primitive.NewObjectID()
		}
		rows[i].SyncedAt = nowUTC
		documents[i] = rows[i]
	}
	_, returnedError = repository.collection.InsertMany(contextValue, documents)
	return returnedError
}

// CountByDepartment 實際在職人數依部門 groupBy 計數
func (repository *RecruiterDataRepository) CountByDepartment(contextValue context.Context) (_ []model.DepartmentCount, returnedError error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{"_id": "$department", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []model.DepartmentCount
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}
