package models

import "time"

// SubmitReportRequest is the JSON body for POST /api/reports.
type SubmitReportRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Type        string       `json:"type"`
	Severity    string       `json:"severity,omitempty"`
	Evidence    []string     `json:"evidence,omitempty"`
	SafeSpot    *bool        `json:"safeSpot,omitempty"`
}

// VoteRequest is the JSON body for POST /api/reports/:id/vote.
type VoteRequest struct {
	Vote string `json:"vote"`
}

// APIResponse is the uniform envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// StatsData is the dashboard summary, recomputed on demand.
type StatsData struct {
	TotalReports        int      `json:"totalReports"`
	VerifiedReports     int      `json:"verifiedReports"`
	PendingReports      int      `json:"pendingReports"`
	AverageResponseTime string   `json:"averageResponseTime"`
	TopHotspots         []string `json:"topHotspots"`
}

// ReportDetail is the detail-page view of a report: the report itself plus
// derived display metrics and related reports from the same location.
type ReportDetail struct {
	IncidentReport
	NetScore           int              `json:"netScore"`
	CredibilityPercent int              `json:"credibilityPercent"`
	Related            []IncidentReport `json:"related"`
}

// MapMarker is the projection of a geolocated report consumed by the map view.
type MapMarker struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Location  string     `json:"location"`
	Type      ReportType `json:"type"`
	Severity  Severity   `json:"severity"`
	Timestamp time.Time  `json:"timestamp"`
}
