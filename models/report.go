package models

import "time"

// ReportType enum
type ReportType string

const (
	Harassment   ReportType = "harassment"
	Theft        ReportType = "theft"
	Assault      ReportType = "assault"
	PoorLighting ReportType = "poor-lighting"
	RoadDamage   ReportType = "road-damage"
	Other        ReportType = "other"
)

// Valid reports whether t is a member of the type enumeration.
func (t ReportType) Valid() bool {
	switch t {
	case Harassment, Theft, Assault, PoorLighting, RoadDamage, Other:
		return true
	}
	return false
}

// Severity enum
type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

// Valid reports whether s is a member of the severity enumeration.
func (s Severity) Valid() bool {
	switch s {
	case Low, Medium, High, Critical:
		return true
	}
	return false
}

// ReportStatus enum
type ReportStatus string

const (
	Pending     ReportStatus = "pending"
	Verified    ReportStatus = "verified"
	Resolved    ReportStatus = "resolved"
	FalseReport ReportStatus = "false-report"
)

// VoteKind is the direction of a vote on a report.
type VoteKind string

const (
	Upvote   VoteKind = "upvote"
	Downvote VoteKind = "downvote"
)

// ParseVoteKind converts a raw request value into a VoteKind.
func ParseVoteKind(s string) (VoteKind, bool) {
	switch VoteKind(s) {
	case Upvote:
		return Upvote, true
	case Downvote:
		return Downvote, true
	}
	return "", false
}

// AnonymousUserID is the submitter placeholder used when no user is identified.
const AnonymousUserID = "anonymous"

// Coordinates is an optional lat/lng pair attached to a report.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IncidentReport represents a safety incident reported by a user
type IncidentReport struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Type        ReportType   `json:"type"`
	Severity    Severity     `json:"severity"`
	Status      ReportStatus `json:"status"`
	Timestamp   time.Time    `json:"timestamp"`
	UserID      string       `json:"userId"`
	Upvotes     int          `json:"upvotes"`
	Downvotes   int          `json:"downvotes"`
	Evidence    []string     `json:"evidence,omitempty"`
	SafeSpot    *bool        `json:"safeSpot,omitempty"`
}
