package services

import (
	"context"
	"io"
	"time"

	"waste-report-server/models"
)

// ComplaintStore is the persistence the complaint service needs
type ComplaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	Save(ctx context.Context, complaint *models.Complaint) error
	FindByID(ctx context.Context, id string) (*models.Complaint, error)
	List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error)
	Count(ctx context.Context, filter models.ComplaintFilter) (int64, error)
	ListOverdueUnnotified(ctx context.Context, now time.Time) ([]models.Complaint, error)
	MarkOverdueNotified(ctx context.Context, id string, at time.Time) error
}

type WorkerStore interface {
	List(ctx context.Context) ([]models.Worker, error)
	FindByID(ctx context.Context, id uint) (*models.Worker, error)
	FindByEmail(ctx context.Context, email string) (*models.Worker, error)
}

type PanchayatStore interface {
	List(ctx context.Context) ([]models.Panchayat, error)
}

// PhotoStore uploads images and resolves their public URLs
type PhotoStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PublicURL(path string) (string, error)
}

// EventPublisher fans complaint lifecycle events out to listeners
type EventPublisher interface {
	Publish(ctx context.Context, event models.ComplaintEvent) error
}
