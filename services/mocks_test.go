package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"waste-report-server/models"
)

type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStore) PublicURL(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event models.ComplaintEvent) error {
	args := m.Called(event.Type, event.ComplaintID)
	return args.Error(0)
}

// memComplaintStore is an in-memory ComplaintStore
type memComplaintStore struct {
	mu        sync.Mutex
	rows      map[string]models.Complaint
	seq       int
	createErr error
}

func newMemComplaintStore() *memComplaintStore {
	return &memComplaintStore{rows: make(map[string]models.Complaint)}
}

func (s *memComplaintStore) Create(ctx context.Context, c *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.seq++
	if c.ID == "" {
		c.ID = fmt.Sprintf("c%d", s.seq)
	}
	if c.Status == "" {
		c.Status = models.StatusPending
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, s.seq, time.UTC)
	}
	s.rows[c.ID] = *c
	return nil
}

func (s *memComplaintStore) Save(ctx context.Context, c *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.rows[c.ID]
	if !ok {
		return models.ErrComplaintNotFound
	}
	row := *c
	row.CreatedAt = prev.CreatedAt
	s.rows[c.ID] = row
	return nil
}

func (s *memComplaintStore) FindByID(ctx context.Context, id string) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[id]
	if !ok {
		return nil, models.ErrComplaintNotFound
	}
	return &c, nil
}

func (s *memComplaintStore) List(ctx context.Context, f models.ComplaintFilter) ([]models.Complaint, error) {
	all := s.matching(f)
	if f.Offset > 0 {
		if f.Offset >= len(all) {
			return []models.Complaint{}, nil
		}
		all = all[f.Offset:]
	}
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, nil
}

func (s *memComplaintStore) Count(ctx context.Context, f models.ComplaintFilter) (int64, error) {
	return int64(len(s.matching(f))), nil
}

func (s *memComplaintStore) ListOverdueUnnotified(ctx context.Context, now time.Time) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range s.matching(models.ComplaintFilter{OverdueAt: &now, Ascending: true}) {
		if c.OverdueNotifiedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memComplaintStore) MarkOverdueNotified(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[id]
	if !ok {
		return models.ErrComplaintNotFound
	}
	c.OverdueNotifiedAt = &at
	s.rows[id] = c
	return nil
}

func (s *memComplaintStore) matching(f models.ComplaintFilter) []models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Complaint{}
	for _, c := range s.rows {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.AssignedWorkerID != nil && !c.IsAssignedTo(*f.AssignedWorkerID) {
			continue
		}
		if f.OverdueAt != nil && !c.IsOverdue(*f.OverdueAt) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.Ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type memWorkerStore struct {
	workers []models.Worker
}

func (s *memWorkerStore) List(ctx context.Context) ([]models.Worker, error) {
	return s.workers, nil
}

func (s *memWorkerStore) FindByID(ctx context.Context, id uint) (*models.Worker, error) {
	for i := range s.workers {
		if s.workers[i].ID == id {
			w := s.workers[i]
			return &w, nil
		}
	}
	return nil, models.ErrWorkerNotFound
}

func (s *memWorkerStore) FindByEmail(ctx context.Context, email string) (*models.Worker, error) {
	for i := range s.workers {
		if s.workers[i].Email == email {
			w := s.workers[i]
			return &w, nil
		}
	}
	return nil, models.ErrWorkerNotFound
}

type memPanchayatStore struct {
	panchayats []models.Panchayat
	err        error
}

func (s *memPanchayatStore) List(ctx context.Context) ([]models.Panchayat, error) {
	return s.panchayats, s.err
}
