package services

import (
	"errors"
	"math"

	"crowdreport-be/models"
	"crowdreport-be/store"
)

// VoteEngine interprets vote requests and applies them to the store.
type VoteEngine struct {
	store *store.ReportStore
}

func NewVoteEngine(s *store.ReportStore) *VoteEngine {
	return &VoteEngine{store: s}
}

// Vote increments the matching counter of the report by exactly one and
// returns the updated report. The kind must be "upvote" or "downvote".
func (e *VoteEngine) Vote(id string, kind string) (models.IncidentReport, error) {
	voteKind, ok := models.ParseVoteKind(kind)
	if !ok {
		return models.IncidentReport{}, &InvalidVoteKindError{Kind: kind}
	}

	report, err := e.store.ApplyVote(id, voteKind)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.IncidentReport{}, &NotFoundError{ID: id}
		}
		return models.IncidentReport{}, err
	}
	return report, nil
}

// NetScore is upvotes minus downvotes, used for ranking and display.
func (e *VoteEngine) NetScore(r models.IncidentReport) int {
	return r.Upvotes - r.Downvotes
}

// CredibilityPercent is upvotes as a rounded percentage of all votes cast.
func (e *VoteEngine) CredibilityPercent(r models.IncidentReport) int {
	total := r.Upvotes + r.Downvotes
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(r.Upvotes) / float64(total) * 100))
}
