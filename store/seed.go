package store

import (
	"time"

	"crowdreport-be/models"
)

// SeedDemoData loads a handful of sample reports so the dashboard and map have
// something to render on a fresh boot. Intended for local development only.
func SeedDemoData(s *ReportStore) error {
	now := time.Now().UTC()
	safe := false

	demo := []models.IncidentReport{
		{
			ID:          "demo-4",
			Title:       "Deep pothole on main road",
			Description: "Large pothole near the junction, two scooters have already skidded",
			Location:    "Maradana Junction",
			Coordinates: &models.Coordinates{Lat: 6.9290, Lng: 79.8651},
			Type:        models.RoadDamage,
			Severity:    models.High,
			Status:      models.Pending,
			Timestamp:   now.Add(-6 * time.Hour),
			UserID:      models.AnonymousUserID,
			Upvotes:     4,
			Downvotes:   0,
		},
		{
			ID:          "demo-3",
			Title:       "Street lights out along the canal",
			Description: "Whole stretch between the bridge and the market is pitch dark after 7pm",
			Location:    "Pettah Market",
			Coordinates: &models.Coordinates{Lat: 6.9387, Lng: 79.8542},
			Type:        models.PoorLighting,
			Severity:    models.Medium,
			Status:      models.Pending,
			Timestamp:   now.Add(-3 * time.Hour),
			UserID:      models.AnonymousUserID,
			Upvotes:     7,
			Downvotes:   1,
		},
		{
			ID:          "demo-2",
			Title:       "Phone snatched near the clock tower",
			Description: "Rider on a red motorbike grabbed a phone and sped off towards the harbour",
			Location:    "Colombo Fort",
			Coordinates: &models.Coordinates{Lat: 6.9344, Lng: 79.8428},
			Type:        models.Theft,
			Severity:    models.High,
			Status:      models.Verified,
			Timestamp:   now.Add(-90 * time.Minute),
			UserID:      "user456",
			Upvotes:     9,
			Downvotes:   0,
			Evidence:    []string{"https://example.com/evidence/clock-tower-cam.jpg"},
		},
		{
			ID:          "demo-1",
			Title:       "Harassment near bus halt",
			Description: "Group of men being verbally abusive near the main bus stop",
			Location:    "Kolpitiya, Colombo 03",
			Coordinates: &models.Coordinates{Lat: 6.8947, Lng: 79.8530},
			Type:        models.Harassment,
			Severity:    models.Medium,
			Status:      models.Verified,
			Timestamp:   now.Add(-30 * time.Minute),
			UserID:      "user123",
			Upvotes:     15,
			Downvotes:   2,
			SafeSpot:    &safe,
		},
	}

	for _, r := range demo {
		if _, err := s.Create(r); err != nil {
			return err
		}
	}
	return nil
}
