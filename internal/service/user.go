package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"recruithub/internal/database/mongodb/repository"
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/storage"
	"recruithub/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	trace             *telemetry.Trace
	userRepo          *repository.UserRepository
	hiredEmployeeRepo *repository.HiredEmployeeRepository
	storageClient     *storage.Client
}

func NewUserService(
	trace *telemetry.Trace,
	userRepo *repository.UserRepository,
	hiredEmployeeRepo *repository.HiredEmployeeRepository,
	storageClient *storage.Client,
) *UserService {
	return &UserService{
		trace:             trace,
		userRepo:          userRepo,
		hiredEmployeeRepo: hiredEmployeeRepo,
		storageClient:     storageClient,
	}
}

// 新增 HR/ADMIN 帳號（ADMIN 專用，input/output 皆為 DTO）
func (s *UserService) CreateUser(ctx context.Context, createDto *dto.CreateUserDto) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if createDto.Role != core.RoleAdmin && createDto.Role != core.RoleHR {
		return nil, cErr.BadRequestBody(fmt.Sprintf("invalid role: %s", createDto.Role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(createDto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, cErr.InternalServer("hash password failed")
	}

	user := &model.User{
		ID:           primitive.NewObjectID(),
		Name:         createDto.Name,
		Email:        createDto.Email,
		PasswordHash: string(hash),
		Role:         createDto.Role,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if repository.IsDuplicateKeyError(err) {
			return nil, cErr.EmailExists(fmt.Sprintf("email %s already registered", createDto.Email))
		}
		return nil, cErr.DatabaseError("database CreateUser error")
	}
	resp := dto.NewUserResponse(created)
	return &resp, nil
}

// 依 id 查詢
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("user not found")
		}
		return nil, cErr.DatabaseError("database GetUserByID error")
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// 管理後台列舉帳號（支援分頁、角色篩選）
func (s *UserService) ListUsers(ctx context.Context, filter bson.M, page, size int64) ([]dto.UserResponseDto, int64, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	users, err := s.userRepo.List(ctx, core.ListOptions{Filter: filter, Page: page, Size: size})
	if err != nil {
		return nil, 0, cErr.DatabaseError("database ListUsers error")
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, cErr.DatabaseError("database CountUsers error")
	}
	resp := make([]dto.UserResponseDto, len(users))
	for i, u := range users {
		resp[i] = dto.NewUserResponse(u)
	}
	return resp, total, nil
}

// 更新帳號基本資訊；email 重複轉譯為 conflict
func (s *UserService) UpdateUserByID(ctx context.Context, id primitive.ObjectID, updateDto *dto.UpdateUserDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	set := bson.M{}
	if updateDto.Name != nil {
		set["name"] = *updateDto.Name
	}
	if updateDto.Email != nil {
		set["email"] = *updateDto.Email
	}
	if updateDto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*updateDto.Password), bcrypt.DefaultCost)
		if err != nil {
			return cErr.InternalServer("hash password failed")
		}
		set["passwordHash"] = string(hash)
	}
	if updateDto.Role != nil {
		if *updateDto.Role != core.RoleAdmin && *updateDto.Role != core.RoleHR {
			return cErr.BadRequestBody(fmt.Sprintf("invalid role: %s", *updateDto.Role))
		}
		set["role"] = *updateDto.Role
	}
	if len(set) == 0 {
		return cErr.BadRequestBody("no fields to update")
	}

	_, err := s.userRepo.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound(fmt.Sprintf("user with id %s not found", id.Hex()))
		}
		if repository.IsDuplicateKeyError(err) {
			return cErr.EmailExists("email already registered")
		}
		return cErr.DatabaseError("database UpdateUserByID error")
	}
	return nil
}

// 刪除帳號；曾經手員工遷移的帳號不可刪（稽核欄位 processedBy 參照）
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	processed, err := s.hiredEmployeeRepo.Count(ctx, bson.M{"processedBy": id})
	if err != nil {
		return cErr.DatabaseError("database Count error")
	}
	if processed > 0 {
		return cErr.BadRequest(fmt.Sprintf("user has processed %d employee records and cannot be deleted", processed))
	}

	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteUser error")
	}
	return nil
}

// UploadAvatar 上傳大頭照並替換舊檔
func (s *UserService) UploadAvatar(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("user not found")
		}
		return nil, cErr.DatabaseError("database GetUserByID error")
	}

	uploaded, err := s.storageClient.Upload(ctx, "avatar", fileHeader)
	if err != nil {
		return nil, err
	}
	avatar := &model.StoredFile{PublicID: uploaded.PublicID, URL: uploaded.URL}

	if _, err := s.userRepo.UpdateByID(ctx, id, bson.M{"$set": bson.M{"avatar": avatar}}); err != nil {
		// 寫檔成功但落庫失敗 → 回收剛上傳的檔案
		_ = s.storageClient.Delete(ctx, uploaded.PublicID)
		return nil, cErr.DatabaseError("database UpdateUserByID error")
	}

	// 舊檔 best-effort 清除
	if user.Avatar != nil && user.Avatar.PublicID != "" {
		_ = s.storageClient.Delete(ctx, user.Avatar.PublicID)
	}

	user.Avatar = avatar
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
