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

type HiredEmployeeRepository struct {
	collection *mongo.Collection
}

func NewHiredEmployeeRepository(mongoClient *client.MongoClient) *HiredEmployeeRepository {
	repository := &HiredEmployeeRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBRecruithub)).Collection(string(core.MongoCollectionHiredEmployees)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.HiredEmployeeIndexes)
	return repository
}

func (repository *HiredEmployeeRepository) Create(contextValue context.Context, employee *model.HiredEmployee) (_ *model.HiredEmployee, returnedError error) {
	nowUTC := time.Now().UTC()
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	employee.CreatedAt = nowUTC
	employee.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, employee)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	employee.ID = objectID
	return employee, nil
}

func (repository *HiredEmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ *model.HiredEmployee, returnedError error) {
	var employee model.HiredEmployee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

func (repository *HiredEmployeeRepository) GetByFormID(contextValue context.Context, formIdentifier primitive.ObjectID) (_ *model.HiredEmployee, returnedError error) {
	var employee model.HiredEmployee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"recruitmentFormId": formIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

func (repository *HiredEmployeeRepository) List(contextValue context.Context, listOptions core.ListOptions) (_ []*model.HiredEmployee, returnedError error) {
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

	var results []*model.HiredEmployee
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

func (repository *HiredEmployeeRepository) Count(contextValue context.Context, filter bson.M) (int64, error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *HiredEmployeeRepository) UpdateByID(contextValue context.Context, employeeIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": employeeIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *HiredEmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	return returnedError
}

// CountActiveSubordinates 計算仍在職且直屬於該主管的員工數
func (repository *HiredEmployeeRepository) CountActiveSubordinates(contextValue context.Context, supervisorIdentifier primitive.ObjectID) (int64, error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"supervisorId": supervisorIdentifier, "isActive": true})
}

func (repository *HiredEmployeeRepository) ListActiveSubordinates(contextValue context.Context, supervisorIdentifier primitive.ObjectID) ([]*model.HiredEmployee, error) {
	return repository.List(contextValue, core.ListOptions{Filter: bson.M{"supervisorId": supervisorIdentifier, "isActive": true}})
}

// ExistsEmployeeID 員工編號是否已被占用
func (repository *HiredEmployeeRepository) ExistsEmployeeID(contextValue context.Context, employeeID string) (bool, error) {
	count, err := repository.collection.CountDocuments(contextValue, bson.M{"employeeId": employeeID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LatestEmployeeIDWithPrefix 回傳指定前綴（<deptPrefix><YY>）下字典序最大的員工編號；
// 不存在時回傳空字串
func (repository *HiredEmployeeRepository) LatestEmployeeIDWithPrefix(contextValue context.Context, prefix string) (string, error) {
	filter := bson.M{"employeeId": primitive.Regex{Pattern: "^" + prefix, Options: ""}}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "employeeId", Value: -1}})

	var employee model.HiredEmployee
	err := repository.collection.FindOne(contextValue, filter, findOptions).Decode(&employee)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return employee.EmployeeID, nil
}

// CountByDepartment 在職員工依部門 groupBy 計數
func (repository *HiredEmployeeRepository) CountByDepartment(contextValue context.Context) (_ []model.DepartmentCount, returnedError error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isActive": true}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$department", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
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

// AverageSalaryByDepartment 在職員工依部門 groupBy 平均薪資
func (repository *HiredEmployeeRepository) AverageSalaryByDepartment(contextValue context.Context) (_ []model.DepartmentSalary, returnedError error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isActive": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$department",
			"averageSalary": bson.M{"$avg": "$basicSalary"},
			"count":         bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var results []model.DepartmentSalary
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}
