package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintStatus represents the lifecycle state of a complaint
type ComplaintStatus string

const (
	StatusPending  ComplaintStatus = "Pending"
	StatusResolved ComplaintStatus = "Resolved"
)

// Complaint is a citizen-submitted waste report
type Complaint struct {
	ID                string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title             string          `json:"title" gorm:"type:varchar(200);not null"`
	Description       string          `json:"description" gorm:"type:text;not null"`
	Location          string          `json:"location" gorm:"column:location_text;type:text;not null"`
	PhotoURL          *string         `json:"photo_url" gorm:"type:varchar(500)"`
	Status            ComplaintStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	AssignedWorkerID  *uint           `json:"assigned_worker_id" gorm:"index"`
	AssignedWorker    *Worker         `json:"assigned_worker,omitempty" gorm:"foreignKey:AssignedWorkerID"`
	Deadline          *time.Time      `json:"deadline"`
	ResolvedAt        *time.Time      `json:"resolved_at"`
	AfterPhotoURL     *string         `json:"after_photo_url" gorm:"type:varchar(500)"`
	OverdueNotifiedAt *time.Time      `json:"-"`
	CreatedAt         time.Time       `json:"created_at" gorm:"<-:create;index"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// BeforeCreate assigns an id and the initial status
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = StatusPending
	}
	return nil
}

func (c *Complaint) IsPending() bool {
	return c.Status == StatusPending
}

func (c *Complaint) IsResolved() bool {
	return c.Status == StatusResolved
}

// IsOverdue reports whether a pending complaint has passed its deadline
func (c *Complaint) IsOverdue(now time.Time) bool {
	return c.IsPending() && c.Deadline != nil && now.After(*c.Deadline)
}

// IsAssignedTo reports whether the complaint is assigned to the given worker
func (c *Complaint) IsAssignedTo(workerID uint) bool {
	return c.AssignedWorkerID != nil && *c.AssignedWorkerID == workerID
}

// Area returns the second comma-separated segment of the location,
// or the whole location when that segment is missing or blank.
func (c *Complaint) Area() string {
	parts := strings.Split(c.Location, ",")
	if len(parts) > 1 {
		if area := strings.TrimSpace(parts[1]); area != "" {
			return area
		}
	}
	return c.Location
}

// AssignTo points the complaint at a worker
func (c *Complaint) AssignTo(worker *Worker) error {
	if !c.IsPending() {
		return ErrComplaintResolved
	}
	id := worker.ID
	c.AssignedWorkerID = &id
	c.AssignedWorker = worker
	return nil
}

// SetDeadline overwrites the deadline and re-arms the overdue notification
func (c *Complaint) SetDeadline(deadline time.Time) error {
	if !c.IsPending() {
		return ErrComplaintResolved
	}
	c.Deadline = &deadline
	c.OverdueNotifiedAt = nil
	return nil
}

// Resolve moves a pending complaint to Resolved.
// resolved_at never precedes created_at.
func (c *Complaint) Resolve(at time.Time, afterPhotoURL *string) error {
	if !c.IsPending() {
		return ErrComplaintResolved
	}
	if at.Before(c.CreatedAt) {
		at = c.CreatedAt
	}
	c.Status = StatusResolved
	c.ResolvedAt = &at
	c.AfterPhotoURL = afterPhotoURL
	return nil
}

// ComplaintFilter narrows complaint list reads
type ComplaintFilter struct {
	Status           ComplaintStatus
	AssignedWorkerID *uint
	OverdueAt        *time.Time
	Ascending        bool
	Limit            int
	Offset           int
}
