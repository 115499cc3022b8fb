package store

import (
	"errors"
	"sync"

	"crowdreport-be/models"
)

var (
	// ErrDuplicateID is returned by Create when the id is already present.
	ErrDuplicateID = errors.New("report id already exists")
	// ErrNotFound is returned when no report matches the given id.
	ErrNotFound = errors.New("report not found")
)

// ReportStore is the authoritative in-memory collection of incident reports.
// All methods are safe for concurrent use; reads see consistent snapshots.
type ReportStore struct {
	mu      sync.RWMutex
	reports []*models.IncidentReport // newest first
	byID    map[string]*models.IncidentReport
}

// New returns an empty ReportStore.
func New() *ReportStore {
	return &ReportStore{
		byID: make(map[string]*models.IncidentReport),
	}
}

// Create appends a fully-populated report at the head of the collection.
func (s *ReportStore) Create(r models.IncidentReport) (models.IncidentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID]; exists {
		return models.IncidentReport{}, ErrDuplicateID
	}

	stored := cloneReport(&r)
	s.reports = append([]*models.IncidentReport{stored}, s.reports...)
	s.byID[r.ID] = stored

	return *cloneReport(stored), nil
}

// GetByID returns the report with the given id.
func (s *ReportStore) GetByID(id string) (models.IncidentReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.byID[id]
	if !exists {
		return models.IncidentReport{}, ErrNotFound
	}
	return *cloneReport(r), nil
}

// List returns all reports in reverse-chronological order (most recent first).
func (s *ReportStore) List() []models.IncidentReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.IncidentReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, *cloneReport(r))
	}
	return out
}

// ApplyVote increments the matching vote counter by exactly one. Counters only
// ever grow; concurrent votes on the same id are serialized by the write lock.
func (s *ReportStore) ApplyVote(id string, kind models.VoteKind) (models.IncidentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.byID[id]
	if !exists {
		return models.IncidentReport{}, ErrNotFound
	}

	switch kind {
	case models.Upvote:
		r.Upvotes++
	case models.Downvote:
		r.Downvotes++
	}

	return *cloneReport(r), nil
}

// Len returns the number of stored reports.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// cloneReport copies a report so callers never alias store-owned state.
func cloneReport(r *models.IncidentReport) *models.IncidentReport {
	out := *r
	if r.Coordinates != nil {
		coords := *r.Coordinates
		out.Coordinates = &coords
	}
	if r.Evidence != nil {
		out.Evidence = append([]string(nil), r.Evidence...)
	}
	if r.SafeSpot != nil {
		safe := *r.SafeSpot
		out.SafeSpot = &safe
	}
	return &out
}
