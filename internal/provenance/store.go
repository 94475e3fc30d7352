package provenance

import (
	"strconv"
	"sync"
	"time"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Store is the mock report database: in-memory, integer ids in insertion
// order. It mirrors what a relational store would hold without carrying
// one.
type Store struct {
	mu      sync.Mutex
	nextID  int
	reports map[int]model.StoredReport
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{nextID: 1, reports: make(map[int]model.StoredReport)}
}

// Create persists a record and returns the stored row
func (s *Store) Create(record model.ProvenanceRecord) model.StoredReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := model.StoredReport{
		ProvenanceRecord: record,
		ID:               s.nextID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.reports[s.nextID] = stored
	s.nextID++

	return stored
}

// Get returns the stored report for an id
func (s *Store) Get(id int) (model.StoredReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok {
		return model.StoredReport{}, &model.NotFoundError{Kind: "report", ID: strconv.Itoa(id)}
	}
	return report, nil
}

// List returns all stored reports in id order
func (s *Store) List() []model.StoredReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.StoredReport, 0, len(s.reports))
	for id := 1; id < s.nextID; id++ {
		if report, ok := s.reports[id]; ok {
			out = append(out, report)
		}
	}
	return out
}
