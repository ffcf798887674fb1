package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"waste-report-server/config"
	"waste-report-server/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	maxTitleLength  = 200
)

var (
	errPhotoStoreMissing = errors.New("photo storage is not configured")
	unsafeKeyChars       = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	allowedPhotoExts     = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
)

// PhotoUpload is an image received from a client, not yet stored
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type SubmitComplaintInput struct {
	Title       string
	Description string
	Location    string
	Photo       *PhotoUpload
}

type ListComplaintsInput struct {
	Status      models.ComplaintStatus
	Ascending   bool
	OverdueOnly bool
	Page        int
	Limit       int
}

type ComplaintPage struct {
	Complaints []models.Complaint `json:"complaints"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// ComplaintService runs submission, reporting and lifecycle changes against the store
type ComplaintService struct {
	complaints ComplaintStore
	workers    WorkerStore
	photos     PhotoStore
	events     EventPublisher
	cfg        config.PhotoConfig
	now        func() time.Time
}

// NewComplaintService wires the service. photos and events may be nil.
func NewComplaintService(complaints ComplaintStore, workers WorkerStore, photos PhotoStore, events EventPublisher, cfg config.PhotoConfig) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		workers:    workers,
		photos:     photos,
		events:     events,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates and stores a new complaint
func (s *ComplaintService) Submit(ctx context.Context, in SubmitComplaintInput) (*models.Complaint, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.Location)

	var missing []string
	if title == "" || len([]rune(title)) > maxTitleLength {
		missing = append(missing, "title")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if location == "" {
		missing = append(missing, "location")
	}
	hasPhoto := in.Photo != nil && in.Photo.Size > 0
	if hasPhoto && !s.validPhoto(in.Photo) {
		missing = append(missing, "photo")
	}
	if len(missing) > 0 {
		return nil, &models.ValidationError{Fields: missing}
	}

	complaint := &models.Complaint{
		Title:       title,
		Description: description,
		Location:    location,
		Status:      models.StatusPending,
	}

	if hasPhoto {
		url, err := s.storePhoto(ctx, s.cfg.Folder, in.Photo)
		if err != nil {
			if s.cfg.UploadPolicy == config.UploadPolicyFail {
				log.Printf("❌ Photo upload failed, complaint rejected: %v", err)
				return nil, err
			}
			log.Printf("⚠️  Photo upload failed, saving complaint without photo: %v", err)
		} else {
			complaint.PhotoURL = &url
		}
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		log.Printf("❌ Failed to save complaint: %v", err)
		return nil, fmt.Errorf("save complaint: %w", err)
	}

	log.Printf("✅ Complaint %s submitted at %q", complaint.ID, complaint.Location)
	s.publish(ctx, models.EventComplaintCreated, complaint)
	return complaint, nil
}

// List returns one page of complaints ordered by creation time
func (s *ComplaintService) List(ctx context.Context, in ListComplaintsInput) (*ComplaintPage, error) {
	switch in.Status {
	case "", models.StatusPending, models.StatusResolved:
	default:
		return nil, &models.ValidationError{Fields: []string{"status"}}
	}

	page, limit := in.Page, in.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := models.ComplaintFilter{
		Status:    in.Status,
		Ascending: in.Ascending,
	}
	if in.OverdueOnly {
		now := s.now()
		filter.OverdueAt = &now
	}

	total, err := s.complaints.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count complaints: %w", err)
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit
	complaints, err := s.complaints.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}

	return &ComplaintPage{Complaints: complaints, Total: total, Page: page, Limit: limit}, nil
}

func (s *ComplaintService) Get(ctx context.Context, id string) (*models.Complaint, error) {
	return s.complaints.FindByID(ctx, id)
}

func (s *ComplaintService) ListWorkers(ctx context.Context) ([]models.WorkerResponse, error) {
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	out := make([]models.WorkerResponse, 0, len(workers))
	for i := range workers {
		out = append(out, workers[i].ToResponse())
	}
	return out, nil
}

// Dashboard computes aggregates over every stored complaint
func (s *ComplaintService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	complaints, err := s.complaints.List(ctx, models.ComplaintFilter{})
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return BuildDashboard(complaints, s.now()), nil
}

// AssignWorker points a pending complaint at an existing worker
func (s *ComplaintService) AssignWorker(ctx context.Context, id string, workerID uint) (*models.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if err := complaint.AssignTo(worker); err != nil {
		return nil, err
	}
	if err := s.complaints.Save(ctx, complaint); err != nil {
		log.Printf("❌ Failed to assign complaint %s: %v", id, err)
		return nil, fmt.Errorf("save complaint: %w", err)
	}

	log.Printf("✅ Complaint %s assigned to worker %d (%s)", id, worker.ID, worker.Name)
	s.publish(ctx, models.EventComplaintAssigned, complaint)
	return complaint, nil
}

// SetDeadline overwrites the deadline of a pending complaint
func (s *ComplaintService) SetDeadline(ctx context.Context, id string, deadline time.Time) (*models.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := complaint.SetDeadline(deadline.UTC()); err != nil {
		return nil, err
	}
	if err := s.complaints.Save(ctx, complaint); err != nil {
		log.Printf("❌ Failed to set deadline on complaint %s: %v", id, err)
		return nil, fmt.Errorf("save complaint: %w", err)
	}

	log.Printf("✅ Deadline for complaint %s set to %s", id, deadline.Format(time.RFC3339))
	s.publish(ctx, models.EventComplaintDeadlineSet, complaint)
	return complaint, nil
}

// ParseDeadline accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp
func ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, &models.ValidationError{Fields: []string{"deadline"}}
}

// MarkResolved closes a complaint on behalf of the worker it is assigned to
func (s *ComplaintService) MarkResolved(ctx context.Context, id string, workerID uint, afterPhoto *PhotoUpload) (*models.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !complaint.IsAssignedTo(workerID) {
		return nil, models.ErrNotAssigned
	}
	if complaint.IsResolved() {
		return nil, models.ErrComplaintResolved
	}

	hasPhoto := afterPhoto != nil && afterPhoto.Size > 0
	if !hasPhoto && s.cfg.ResolveRequiresPhoto {
		return nil, models.ErrAfterPhotoRequired
	}

	var afterURL *string
	if hasPhoto {
		if !s.validPhoto(afterPhoto) {
			return nil, &models.ValidationError{Fields: []string{"after_photo"}}
		}
		url, err := s.storePhoto(ctx, path.Join(s.cfg.Folder, "after"), afterPhoto)
		if err != nil {
			log.Printf("❌ After-photo upload failed for complaint %s: %v", id, err)
			return nil, err
		}
		afterURL = &url
	}

	if err := complaint.Resolve(s.now(), afterURL); err != nil {
		return nil, err
	}
	if err := s.complaints.Save(ctx, complaint); err != nil {
		log.Printf("❌ Failed to resolve complaint %s: %v", id, err)
		return nil, fmt.Errorf("save complaint: %w", err)
	}

	log.Printf("✅ Complaint %s resolved by worker %d", id, workerID)
	s.publish(ctx, models.EventComplaintResolved, complaint)
	return complaint, nil
}

// WorkerTasks returns the task summary of one worker
func (s *ComplaintService) WorkerTasks(ctx context.Context, workerID uint) (*models.TaskSummary, error) {
	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	complaints, err := s.complaints.List(ctx, models.ComplaintFilter{AssignedWorkerID: &workerID})
	if err != nil {
		return nil, fmt.Errorf("list worker tasks: %w", err)
	}
	return WorkerTaskSummary(worker, complaints), nil
}

// NotifyOverdue emits one overdue event per newly overdue complaint and returns how many were sent
func (s *ComplaintService) NotifyOverdue(ctx context.Context) (int, error) {
	now := s.now()
	overdue, err := s.complaints.ListOverdueUnnotified(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list overdue complaints: %w", err)
	}

	notified := 0
	for i := range overdue {
		c := &overdue[i]
		if err := s.complaints.MarkOverdueNotified(ctx, c.ID, now); err != nil {
			log.Printf("❌ Failed to mark complaint %s overdue: %v", c.ID, err)
			continue
		}
		c.OverdueNotifiedAt = &now
		s.publish(ctx, models.EventComplaintOverdue, c)
		notified++
	}
	return notified, nil
}

func (s *ComplaintService) validPhoto(p *PhotoUpload) bool {
	if p.Size <= 0 || (s.cfg.MaxBytes > 0 && p.Size > s.cfg.MaxBytes) {
		return false
	}
	return allowedPhotoExts[strings.ToLower(filepath.Ext(p.Filename))]
}

func (s *ComplaintService) storePhoto(ctx context.Context, folder string, p *PhotoUpload) (string, error) {
	key := path.Join(folder, PhotoKey(s.now(), p.Filename))
	if s.photos == nil {
		return "", &models.UploadError{Key: key, Err: errPhotoStoreMissing}
	}

	stored, err := s.photos.Upload(ctx, key, p.Body, p.ContentType)
	if err != nil {
		return "", &models.UploadError{Key: key, Err: err}
	}
	url, err := s.photos.PublicURL(stored)
	if err != nil {
		return "", &models.UploadError{Key: key, Err: err}
	}
	return url, nil
}

// PhotoKey builds the object name <unix-millis>-<sanitised filename>
func PhotoKey(at time.Time, filename string) string {
	name := unsafeKeyChars.ReplaceAllString(filepath.Base(filename), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "photo"
	}
	return fmt.Sprintf("%d-%s", at.UnixMilli(), name)
}

func (s *ComplaintService) publish(ctx context.Context, eventType models.EventType, complaint *models.Complaint) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, models.NewComplaintEvent(eventType, complaint, s.now())); err != nil {
		log.Printf("⚠️  Failed to publish %s for complaint %s: %v", eventType, complaint.ID, err)
	}
}
