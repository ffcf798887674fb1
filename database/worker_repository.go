package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"waste-report-server/models"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) List(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).Order("id ASC").Find(&workers).Error
	return workers, err
}

func (r *WorkerRepository) FindByID(ctx context.Context, id uint) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).First(&worker, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) FindByEmail(ctx context.Context, email string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}
