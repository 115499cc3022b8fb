package services

import (
	"errors"
	"strings"
	"time"

	"crowdreport-be/models"
	"crowdreport-be/store"
	"crowdreport-be/utils"
)

// relatedReportsLimit caps the number of same-location reports returned
// alongside a report's detail view.
const relatedReportsLimit = 3

// ReportService turns raw submissions into valid stored reports and answers
// read queries over the store.
type ReportService struct {
	store *store.ReportStore
}

func NewReportService(s *store.ReportStore) *ReportService {
	return &ReportService{store: s}
}

// Submit validates the submission, fills in server-assigned fields and
// persists the report. Required fields are checked in order: type, title,
// location; the first failure is reported as a ValidationError.
func (s *ReportService) Submit(input models.SubmitReportRequest, userID string) (models.IncidentReport, error) {
	reportType := models.ReportType(input.Type)
	if !reportType.Valid() {
		return models.IncidentReport{}, &ValidationError{Field: "type"}
	}
	if strings.TrimSpace(input.Title) == "" {
		return models.IncidentReport{}, &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(input.Location) == "" {
		return models.IncidentReport{}, &ValidationError{Field: "location"}
	}

	severity := models.Medium
	if input.Severity != "" {
		severity = models.Severity(input.Severity)
		if !severity.Valid() {
			return models.IncidentReport{}, &ValidationError{Field: "severity"}
		}
	}

	if userID == "" {
		userID = models.AnonymousUserID
	}

	report := models.IncidentReport{
		ID:          utils.NewReportID(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Coordinates: input.Coordinates,
		Type:        reportType,
		Severity:    severity,
		Status:      models.Pending,
		Timestamp:   time.Now().UTC(),
		UserID:      userID,
		Upvotes:     0,
		Downvotes:   0,
		Evidence:    input.Evidence,
		SafeSpot:    input.SafeSpot,
	}

	return s.store.Create(report)
}

// GetDetail returns the report with the given id.
func (s *ReportService) GetDetail(id string) (models.IncidentReport, error) {
	report, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.IncidentReport{}, &NotFoundError{ID: id}
		}
		return models.IncidentReport{}, err
	}
	return report, nil
}

// ListAll returns every report, most recent first.
func (s *ReportService) ListAll() []models.IncidentReport {
	return s.store.List()
}

// FindRelated returns reports sharing the given report's location, excluding
// excludeID, capped at three, preserving store order.
func (s *ReportService) FindRelated(report models.IncidentReport, excludeID string) []models.IncidentReport {
	related := make([]models.IncidentReport, 0, relatedReportsLimit)
	for _, r := range s.store.List() {
		if r.ID == excludeID || r.Location != report.Location {
			continue
		}
		related = append(related, r)
		if len(related) == relatedReportsLimit {
			break
		}
	}
	return related
}
