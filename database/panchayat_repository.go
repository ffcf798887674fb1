package database

import (
	"context"

	"gorm.io/gorm"

	"waste-report-server/models"
)

type PanchayatRepository struct {
	db *gorm.DB
}

func NewPanchayatRepository(db *gorm.DB) *PanchayatRepository {
	return &PanchayatRepository{db: db}
}

// List returns panchayats in insertion order; ranking happens in the leaderboard service
func (r *PanchayatRepository) List(ctx context.Context) ([]models.Panchayat, error) {
	var panchayats []models.Panchayat
	err := r.db.WithContext(ctx).Order("id ASC").Find(&panchayats).Error
	return panchayats, err
}

func (r *PanchayatRepository) Create(ctx context.Context, panchayat *models.Panchayat) error {
	return r.db.WithContext(ctx).Create(panchayat).Error
}
