package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"recruithub/internal/database/mongodb/repository"
	"recruithub/internal/dto"
	cErr "recruithub/internal/pkg/error"
	"recruithub/internal/storage"
	"recruithub/internal/telemetry"
	"recruithub/utils/validate"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 應徵表單最多夾帶的文件數
const maxApplicationDocuments = 6

type RecruitmentService struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	recruitmentRepo   *repository.RecruitmentFormRepository
	hiredEmployeeRepo *repository.HiredEmployeeRepository
	storageClient     *storage.Client
}

func NewRecruitmentService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	recruitmentRepo *repository.RecruitmentFormRepository,
	hiredEmployeeRepo *repository.HiredEmployeeRepository,
	storageClient *storage.Client,
) *RecruitmentService {
	return &RecruitmentService{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		recruitmentRepo:   recruitmentRepo,
		hiredEmployeeRepo: hiredEmployeeRepo,
		storageClient:     storageClient,
	}
}

// SubmitApplication 公開應徵入口：檢核 → 上傳文件 → 落庫；
// 落庫失敗時 best-effort 清除已上傳的檔案
func (s *RecruitmentService) SubmitApplication(
	ctx context.Context,
	applyDto *dto.ApplyDto,
	files map[core.DocumentKind][]*multipart.FileHeader,
) (*dto.ApplyResponseDto, error) {
	return s.createForm(ctx, applyDto, files, nil)
}

// StaffCreate 人員代建表單；createdBy 記錄經手人
func (s *RecruitmentService) StaffCreate(
	ctx context.Context,
	applyDto *dto.ApplyDto,
	files map[core.DocumentKind][]*multipart.FileHeader,
	createdBy primitive.ObjectID,
) (*dto.ApplyResponseDto, error) {
	return s.createForm(ctx, applyDto, files, &createdBy)
}

func (s *RecruitmentService) createForm(
	ctx context.Context,
	applyDto *dto.ApplyDto,
	files map[core.DocumentKind][]*multipart.FileHeader,
	createdBy *primitive.ObjectID,
) (*dto.ApplyResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	birthDate, err := s.validateApplicant(applyDto)
	if err != nil {
		return nil, err
	}

	documents, uploadedIDs, err := s.uploadDocuments(ctx, files)
	if err != nil {
		s.cleanupFiles(ctx, uploadedIDs)
		return nil, err
	}

	form := &model.RecruitmentForm{
		ID:              primitive.NewObjectID(),
		FullName:        applyDto.FullName,
		Email:           applyDto.Email,
		Phone:           applyDto.Phone,
		BirthDate:       birthDate,
		Gender:          core.Gender(applyDto.Gender),
		Province:        applyDto.Province,
		City:            applyDto.City,
		Address:         applyDto.Address,
		Education:       core.Education(applyDto.Education),
		Major:           applyDto.Major,
		AppliedPosition: core.Position(applyDto.AppliedPosition),
		ExpectedSalary:  applyDto.ExpectedSalary,
		Status:          core.StatusPending,
		Documents:       documents,
		CreatedBy:       createdBy,
	}

	created, err := s.recruitmentRepo.Create(ctx, form)
	if err != nil {
		s.cleanupFiles(ctx, uploadedIDs)
		return nil, cErr.DatabaseError("database CreateForm error")
	}

	if s.metric.ApplicationsTotal != nil {
		s.metric.ApplicationsTotal.WithLabelValues(string(created.AppliedPosition)).Inc()
	}
	return &dto.ApplyResponseDto{ID: created.ID.Hex(), Status: created.Status}, nil
}

// PublicStatus 公開查詢：只回最小資訊
func (s *RecruitmentService) PublicStatus(ctx context.Context, id primitive.ObjectID) (*dto.PublicStatusDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	form, err := s.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("application not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	return &dto.PublicStatusDto{
		ID:              form.ID.Hex(),
		FullName:        form.FullName,
		AppliedPosition: form.AppliedPosition,
		Status:          form.Status,
		SubmittedAt:     form.CreatedAt,
	}, nil
}

// GetForm 人員端完整表單
func (s *RecruitmentService) GetForm(ctx context.Context, id primitive.ObjectID) (*model.RecruitmentForm, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	form, err := s.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("recruitment form not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	return form, nil
}

// ListForms 人員端列表（分頁 + 篩選 + 全文搜尋）
func (s *RecruitmentService) ListForms(ctx context.Context, query *dto.ListRecruitmentQuery) ([]*model.RecruitmentForm, int64, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	filter := bson.M{}
	if query.Status != "" {
		if !validate.IsValidRecruitmentStatus(query.Status) {
			return nil, 0, cErr.BadRequestParams(fmt.Sprintf("invalid status: %s", query.Status))
		}
		filter["status"] = core.RecruitmentStatus(query.Status)
	}
	if query.Province != "" {
		filter["province"] = query.Province
	}
	if query.Education != "" {
		filter["education"] = core.Education(query.Education)
	}
	if query.Position != "" {
		filter["appliedPosition"] = core.Position(query.Position)
	}
	if query.Search != "" {
		filter["$text"] = bson.M{"$search": query.Search}
	}
	if query.From != "" || query.To != "" {
		dateRange := bson.M{}
		if query.From != "" {
			from, parseErr := time.Parse("2006-01-02", query.From)
			if parseErr != nil {
				return nil, 0, cErr.BadRequestParams(fmt.Sprintf("invalid from date: %s", query.From))
			}
			dateRange["$gte"] = from
		}
		if query.To != "" {
			// to 為含當日
			to, parseErr := time.Parse("2006-01-02", query.To)
			if parseErr != nil {
				return nil, 0, cErr.BadRequestParams(fmt.Sprintf("invalid to date: %s", query.To))
			}
			dateRange["$lt"] = to.AddDate(0, 0, 1)
		}
		filter["createdAt"] = dateRange
	}

	forms, err := s.recruitmentRepo.List(ctx, core.ListOptions{Filter: filter, Page: query.Page, Size: query.Size})
	if err != nil {
		return nil, 0, cErr.DatabaseError("database ListForms error")
	}
	total, err := s.recruitmentRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, cErr.DatabaseError("database CountForms error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Page:        query.Page,
		Size:        query.Size,
		ResultCount: len(forms),
	})
	return forms, total, nil
}

// UpdateForm 人員端部分更新；重新上傳的檔案替換並刪除舊參照。
// 已遷移的表單一律擋下
func (s *RecruitmentService) UpdateForm(
	ctx context.Context,
	id primitive.ObjectID,
	updateDto *dto.UpdateRecruitmentDto,
	files map[core.DocumentKind][]*multipart.FileHeader,
) (*model.RecruitmentForm, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	form, err := s.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNotMigrated(ctx, id); err != nil {
		return nil, err
	}

	set := bson.M{}
	if updateDto.FullName != nil {
		set["fullName"] = *updateDto.FullName
	}
	if updateDto.Email != nil {
		set["email"] = *updateDto.Email
	}
	if updateDto.Phone != nil {
		set["phone"] = *updateDto.Phone
	}
	if updateDto.BirthDate != nil {
		birthDate, parseErr := time.Parse("2006-01-02", *updateDto.BirthDate)
		if parseErr != nil {
			return nil, cErr.BadRequestBody("invalid birthDate")
		}
		set["birthDate"] = birthDate
	}
	if updateDto.Gender != nil {
		if !validate.IsValidGender(*updateDto.Gender) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid gender: %s", *updateDto.Gender))
		}
		set["gender"] = core.Gender(*updateDto.Gender)
	}
	if updateDto.Province != nil {
		if !validate.IsValidProvince(*updateDto.Province) {
			return nil, cErr.InvalidProvince(fmt.Sprintf("province %q is not accepted", *updateDto.Province))
		}
		set["province"] = *updateDto.Province
	}
	if updateDto.City != nil {
		set["city"] = *updateDto.City
	}
	if updateDto.Address != nil {
		set["address"] = *updateDto.Address
	}
	if updateDto.Education != nil {
		if !validate.IsValidEducation(*updateDto.Education) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid education: %s", *updateDto.Education))
		}
		set["education"] = core.Education(*updateDto.Education)
	}
	if updateDto.Major != nil {
		set["major"] = *updateDto.Major
	}
	if updateDto.AppliedPosition != nil {
		if !validate.IsValidPosition(*updateDto.AppliedPosition) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("invalid appliedPosition: %s", *updateDto.AppliedPosition))
		}
		set["appliedPosition"] = core.Position(*updateDto.AppliedPosition)
	}
	if updateDto.ExpectedSalary != nil {
		set["expectedSalary"] = *updateDto.ExpectedSalary
	}

	// 重新上傳 → 新檔先上傳，成功落庫後刪舊檔
	var replacedIDs []string
	if len(files) > 0 {
		documents, uploadedIDs, uploadErr := s.uploadDocuments(ctx, files)
		if uploadErr != nil {
			s.cleanupFiles(ctx, uploadedIDs)
			return nil, uploadErr
		}
		if documents.Photo != nil {
			if form.Documents.Photo != nil {
				replacedIDs = append(replacedIDs, form.Documents.Photo.PublicID)
			}
			set["documents.photo"] = documents.Photo
		}
		if documents.CV != nil {
			if form.Documents.CV != nil {
				replacedIDs = append(replacedIDs, form.Documents.CV.PublicID)
			}
			set["documents.cv"] = documents.CV
		}
		if documents.IDCard != nil {
			if form.Documents.IDCard != nil {
				replacedIDs = append(replacedIDs, form.Documents.IDCard.PublicID)
			}
			set["documents.idCard"] = documents.IDCard
		}
		if documents.PoliceClearance != nil {
			if form.Documents.PoliceClearance != nil {
				replacedIDs = append(replacedIDs, form.Documents.PoliceClearance.PublicID)
			}
			set["documents.policeClearance"] = documents.PoliceClearance
		}
		if documents.VaccineCertificate != nil {
			if form.Documents.VaccineCertificate != nil {
				replacedIDs = append(replacedIDs, form.Documents.VaccineCertificate.PublicID)
			}
			set["documents.vaccineCertificate"] = documents.VaccineCertificate
		}
		if len(documents.Supporting) > 0 {
			for _, old := range form.Documents.Supporting {
				replacedIDs = append(replacedIDs, old.PublicID)
			}
			set["documents.supporting"] = documents.Supporting
		}
	}

	if len(set) == 0 {
		return form, nil
	}

	if _, err := s.recruitmentRepo.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("recruitment form not found")
		}
		return nil, cErr.DatabaseError("database UpdateForm error")
	}
	s.cleanupFiles(ctx, replacedIDs)

	return s.GetForm(ctx, id)
}

// DeleteForm 刪除表單並串刪文件；已遷移者擋下
func (s *RecruitmentService) DeleteForm(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	form, err := s.GetForm(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureNotMigrated(ctx, id); err != nil {
		return err
	}

	if err := s.recruitmentRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteForm error")
	}
	var publicIDs []string
	for _, ref := range form.Documents.All() {
		publicIDs = append(publicIDs, ref.PublicID)
	}
	s.cleanupFiles(ctx, publicIDs)
	return nil
}

// UpdateStatus 招募狀態流轉；拒絕的轉換附 metric
func (s *RecruitmentService) UpdateStatus(
	ctx context.Context,
	id primitive.ObjectID,
	newStatus core.RecruitmentStatus,
	principal core.Principal,
) (*model.RecruitmentForm, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !validate.IsValidRecruitmentStatus(string(newStatus)) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("unknown status: %s", newStatus))
	}

	form, err := s.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}

	if !core.CanTransition(form.Status, newStatus) {
		if s.metric.TransitionRejectedTotal != nil {
			s.metric.TransitionRejectedTotal.
				WithLabelValues(fmt.Sprintf("%s->%s", form.Status, newStatus)).
				Inc()
		}
		return nil, cErr.InvalidStatusTransition(
			fmt.Sprintf("cannot transition from %s to %s", form.Status, newStatus))
	}

	updatedBy, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return nil, cErr.Unauthorized("invalid principal")
	}
	now := time.Now().UTC()
	set := bson.M{
		"status":          newStatus,
		"statusUpdatedBy": updatedBy,
		"statusUpdatedAt": now,
	}
	if _, err := s.recruitmentRepo.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("recruitment form not found")
		}
		return nil, cErr.DatabaseError("database UpdateStatus error")
	}

	form.Status = newStatus
	form.StatusUpdatedBy = &updatedBy
	form.StatusUpdatedAt = &now
	return form, nil
}

// ─── helpers ───────────────────────────────────────────────────────────────────

func (s *RecruitmentService) validateApplicant(applyDto *dto.ApplyDto) (time.Time, error) {
	if !validate.IsValidGender(applyDto.Gender) {
		return time.Time{}, cErr.BadRequestBody(fmt.Sprintf("invalid gender: %s", applyDto.Gender))
	}
	if !validate.IsValidProvince(applyDto.Province) {
		return time.Time{}, cErr.InvalidProvince(fmt.Sprintf("province %q is not accepted", applyDto.Province))
	}
	if !validate.IsValidEducation(applyDto.Education) {
		return time.Time{}, cErr.BadRequestBody(fmt.Sprintf("invalid education: %s", applyDto.Education))
	}
	if !validate.IsValidPosition(applyDto.AppliedPosition) {
		return time.Time{}, cErr.BadRequestBody(fmt.Sprintf("invalid appliedPosition: %s", applyDto.AppliedPosition))
	}
	birthDate, err := time.Parse("2006-01-02", applyDto.BirthDate)
	if err != nil {
		return time.Time{}, cErr.BadRequestBody("invalid birthDate")
	}
	return birthDate, nil
}

// uploadDocuments 逐一上傳夾帶文件；回傳組好的參照與已上傳的 publicID（供失敗回收）
func (s *RecruitmentService) uploadDocuments(
	ctx context.Context,
	files map[core.DocumentKind][]*multipart.FileHeader,
) (model.ApplicationDocuments, []string, error) {
	var documents model.ApplicationDocuments
	var uploadedIDs []string

	totalFiles := 0
	for kind, headers := range files {
		switch kind {
		case core.DocumentPhoto, core.DocumentCV, core.DocumentIDCard,
			core.DocumentPoliceClearance, core.DocumentVaccineCertificate:
			if len(headers) > 1 {
				return documents, uploadedIDs, cErr.InvalidDocumentType(fmt.Sprintf("field %s accepts a single file", kind))
			}
		case core.DocumentSupporting:
			// 多檔
		default:
			return documents, uploadedIDs, cErr.InvalidDocumentType(fmt.Sprintf("unknown document field: %s", kind))
		}
		totalFiles += len(headers)
	}
	if totalFiles > maxApplicationDocuments {
		return documents, uploadedIDs, cErr.InvalidDocumentType(
			fmt.Sprintf("at most %d documents are accepted", maxApplicationDocuments))
	}

	upload := func(kind core.DocumentKind, header *multipart.FileHeader) (*model.StoredFile, error) {
		uploaded, err := s.storageClient.Upload(ctx, string(kind), header)
		if err != nil {
			return nil, err
		}
		uploadedIDs = append(uploadedIDs, uploaded.PublicID)
		return &model.StoredFile{PublicID: uploaded.PublicID, URL: uploaded.URL}, nil
	}

	for kind, headers := range files {
		for _, header := range headers {
			ref, err := upload(kind, header)
			if err != nil {
				return documents, uploadedIDs, err
			}
			switch kind {
			case core.DocumentPhoto:
				documents.Photo = ref
			case core.DocumentCV:
				documents.CV = ref
			case core.DocumentIDCard:
				documents.IDCard = ref
			case core.DocumentPoliceClearance:
				documents.PoliceClearance = ref
			case core.DocumentVaccineCertificate:
				documents.VaccineCertificate = ref
			case core.DocumentSupporting:
				documents.Supporting = append(documents.Supporting, *ref)
			}
		}
	}
	return documents, uploadedIDs, nil
}

// cleanupFiles best-effort 清除外部儲存的孤兒檔案；失敗只記 log
func (s *RecruitmentService) cleanupFiles(ctx context.Context, publicIDs []string) {
	for _, publicID := range publicIDs {
		if publicID == "" {
			continue
		}
		if err := s.storageClient.Delete(ctx, publicID); err != nil {
			s.logger.Warn("orphan file cleanup failed",
				zap.String("publicId", publicID),
				zap.Error(err),
			)
		}
	}
}

func (s *RecruitmentService) ensureNotMigrated(ctx context.Context, formID primitive.ObjectID) error {
	_, err := s.hiredEmployeeRepo.GetByFormID(ctx, formID)
	if err == nil {
		return cErr.AlreadyMigrated("form is linked to a hired employee and can no longer be modified")
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return cErr.DatabaseError("database GetByFormID error")
}
