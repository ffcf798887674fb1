package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"waste-report-server/config"
	"waste-report-server/models"
	"waste-report-server/types"
	"waste-report-server/utils"
)

// AuthService issues access tokens for the admin and worker roles
type AuthService struct {
	admin   config.AdminConfig
	workers WorkerStore
}

func NewAuthService(admin config.AdminConfig, workers WorkerStore) *AuthService {
	return &AuthService{admin: admin, workers: workers}
}

type LoginResult struct {
	Token  string                 `json:"token"`
	Role   string                 `json:"role"`
	Worker *models.WorkerResponse `json:"worker,omitempty"`
}

// AdminLogin checks the configured admin email. The password is only verified
// when ADMIN_PASSWORD_HASH is set.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) {
		return nil, models.ErrInvalidCredentials
	}
	if s.admin.PasswordHash != "" && !utils.CheckPasswordHash(password, s.admin.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(0, strings.ToLower(s.admin.Email), types.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	log.Printf("🔐 Admin %s logged in", s.admin.Email)
	return &LoginResult{Token: token, Role: types.RoleAdmin}, nil
}

func (s *AuthService) WorkerLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	worker, err := s.workers.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrWorkerNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if worker.PasswordHash == "" || !utils.CheckPasswordHash(password, worker.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(worker.ID, worker.Email, types.RoleWorker)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	resp := worker.ToResponse()
	log.Printf("🔐 Worker %d (%s) logged in", worker.ID, worker.Email)
	return &LoginResult{Token: token, Role: types.RoleWorker, Worker: &resp}, nil
}
