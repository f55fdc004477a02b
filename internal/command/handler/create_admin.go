package command

import (
	"context"
	"strings"
	"time"

	"recruithub/internal/core"
	"recruithub/internal/database/mongodb/model"
	"recruithub/internal/database/mongodb/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const createAdminTimeout = 10 * time.Second

// CreateAdminHandler 建立第一個 ADMIN 帳號；之後的帳號走 API
type CreateAdminHandler struct {
	logger   *zap.Logger
	userRepo *repository.UserRepository
}

func NewCreateAdminHandler(logger *zap.Logger, userRepo *repository.UserRepository) *CreateAdminHandler {
	return &CreateAdminHandler{
		logger:   logger,
		userRepo: userRepo,
	}
}

func (handler *CreateAdminHandler) Run(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 8 {
		cmd.PrintErrln("--name, --email are required and --password must be at least 8 characters")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), createAdminTimeout)
	defer cancel()

	hash, hashError := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if hashError != nil {
		handler.logger.Error("[CreateAdmin] password hash failed", zap.Error(hashError))
		return
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         core.RoleAdmin,
	}
	created, createError := handler.userRepo.Create(ctx, user)
	if createError != nil {
		if repository.IsDuplicateKeyError(createError) {
			cmd.PrintErrf("admin with email %s already exists\n", email)
			return
		}
		handler.logger.Error("[CreateAdmin] create failed", zap.Error(createError))
		return
	}

	cmd.Printf("admin account created: %s (%s)\n", created.Email, created.ID.Hex())
}
