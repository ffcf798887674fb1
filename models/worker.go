package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Worker is a waste management worker that complaints get assigned to
type Worker struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Location     string    `json:"location" gorm:"type:varchar(255)"`
	Panchayat    string    `json:"panchayat" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// BeforeSave keeps emails in one canonical form
func (w *Worker) BeforeSave(tx *gorm.DB) error {
	w.Email = strings.ToLower(strings.TrimSpace(w.Email))
	return nil
}

// WorkerResponse is the public view of a worker
type WorkerResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Location  string `json:"location,omitempty"`
	Panchayat string `json:"panchayat,omitempty"`
}

func (w *Worker) ToResponse() WorkerResponse {
	return WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Location:  w.Location,
		Panchayat: w.Panchayat,
	}
}

// TaskSummary is a worker's view of the complaints assigned to them
type TaskSummary struct {
	Worker    WorkerResponse `json:"worker"`
	Pending   []Complaint    `json:"pending"`
	Completed []Complaint    `json:"completed"`
	Stats     TaskStats      `json:"stats"`
}

type TaskStats struct {
	Pending       int `json:"pending"`
	Completed     int `json:"completed"`
	TotalAssigned int `json:"total_assigned"`
}
