package controllers

import (
	"net/http"

	"crowdreport-be/models"
	"crowdreport-be/services"

	"github.com/gin-gonic/gin"
)

// ReportController exposes the report domain as JSON endpoints. Handlers only
// parse, delegate and map results; business rules live in the services.
type ReportController struct {
	reports *services.ReportService
	votes   *services.VoteEngine
	stats   *services.StatsAggregator
}

func NewReportController(reports *services.ReportService, votes *services.VoteEngine, stats *services.StatsAggregator) *ReportController {
	return &ReportController{
		reports: reports,
		votes:   votes,
		stats:   stats,
	}
}

// ListReports handles GET /api/reports
func (ctrl *ReportController) ListReports(c *gin.Context) {
	respondData(c, http.StatusOK, ctrl.reports.ListAll(), "")
}

// GetReport handles GET /api/reports/:id
func (ctrl *ReportController) GetReport(c *gin.Context) {
	report, err := ctrl.reports.GetDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	detail := models.ReportDetail{
		IncidentReport:     report,
		NetScore:           ctrl.votes.NetScore(report),
		CredibilityPercent: ctrl.votes.CredibilityPercent(report),
		Related:            ctrl.reports.FindRelated(report, report.ID),
	}

	respondData(c, http.StatusOK, detail, "")
}

// SubmitReport handles POST /api/reports
func (ctrl *ReportController) SubmitReport(c *gin.Context) {
	var input models.SubmitReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, &services.ValidationError{Field: "body"})
		return
	}

	report, err := ctrl.reports.Submit(input, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, report, "Report submitted successfully")
}

// VoteReport handles POST /api/reports/:id/vote
func (ctrl *ReportController) VoteReport(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &services.ValidationError{Field: "body"})
		return
	}

	report, err := ctrl.votes.Vote(c.Param("id"), req.Vote)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, report, "Vote recorded successfully")
}

// GetStats handles GET /api/reports/stats
func (ctrl *ReportController) GetStats(c *gin.Context) {
	respondData(c, http.StatusOK, ctrl.stats.Snapshot(), "")
}

// MapReports handles GET /api/reports/map; it returns only geolocated
// reports, projected to the marker fields the map view consumes.
func (ctrl *ReportController) MapReports(c *gin.Context) {
	markers := make([]models.MapMarker, 0)
	for _, r := range ctrl.reports.ListAll() {
		if r.Coordinates == nil {
			continue
		}
		markers = append(markers, models.MapMarker{
			ID:        r.ID,
			Title:     r.Title,
			Lat:       r.Coordinates.Lat,
			Lng:       r.Coordinates.Lng,
			Location:  r.Location,
			Type:      r.Type,
			Severity:  r.Severity,
			Timestamp: r.Timestamp,
		})
	}

	respondData(c, http.StatusOK, markers, "")
}
