package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"waste-report-server/models"
)

// ComplaintRepository persists complaints through gorm
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// Save writes every column of the complaint; last write wins
func (r *ComplaintRepository) Save(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Omit("AssignedWorker").Save(complaint).Error
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).Preload("AssignedWorker").Where("id = ?", id).First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrComplaintNotFound
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// List returns complaints ordered by created_at, newest first unless Ascending is set
func (r *ComplaintRepository) List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error) {
	order := "created_at DESC, id DESC"
	if filter.Ascending {
		order = "created_at ASC, id ASC"
	}

	query := r.filtered(ctx, filter).Preload("AssignedWorker").Order(order)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var complaints []models.Complaint
	if err := query.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) Count(ctx context.Context, filter models.ComplaintFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

// ListOverdueUnnotified returns pending complaints past their deadline that have not been announced yet
func (r *ComplaintRepository) ListOverdueUnnotified(ctx context.Context, now time.Time) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.WithContext(ctx).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ? AND overdue_notified_at IS NULL",
			models.StatusPending, now).
		Order("deadline ASC").
		Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) MarkOverdueNotified(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("overdue_notified_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrComplaintNotFound
	}
	return nil
}

func (r *ComplaintRepository) filtered(ctx context.Context, filter models.ComplaintFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Complaint{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AssignedWorkerID != nil {
		query = query.Where("assigned_worker_id = ?", *filter.AssignedWorkerID)
	}
	if filter.OverdueAt != nil {
		query = query.Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.StatusPending, *filter.OverdueAt)
	}
	return query
}
