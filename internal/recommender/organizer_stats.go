package recommender

import (
	"gonum.org/v1/gonum/stat"

	"github.com/studhub/eventrec/pkg/models"
)

// Defaults used when the user has no attendance history for an organizer.
const (
	defaultOrganizerRating      = 3.0
	defaultOrganizerSuccessRate = 0.5
)

// OrganizerStats is the per-organizer reputation signal derived solely from
// the requesting user's own attendance history.
type OrganizerStats struct {
	AvgRating       float64
	AttendanceCount int
	SuccessRate     float64
}

// ComputeOrganizerStats collects ratings of attended events per organizer and
// reduces them to mean rating, attendance count and the fraction of ratings
// of 4 or higher. Attendances whose event id is absent from the catalog are
// skipped. Pure function of its inputs.
func ComputeOrganizerStats(profile *models.UserProfile, catalog map[int64]*models.Event) map[string]OrganizerStats {
	ratings := make(map[string][]float64)
	for _, att := range profile.VisitedEvents {
		if !att.Attended {
			continue
		}
		event, ok := catalog[att.EventID]
		if !ok {
			continue
		}
		ratings[event.Organizer] = append(ratings[event.Organizer], float64(att.Rating))
	}

	stats := make(map[string]OrganizerStats, len(ratings))
	for organizer, rs := range ratings {
		successful := 0
		for _, r := range rs {
			if r >= 4 {
				successful++
			}
		}
		stats[organizer] = OrganizerStats{
			AvgRating:       stat.Mean(rs, nil),
			AttendanceCount: len(rs),
			SuccessRate:     float64(successful) / float64(len(rs)),
		}
	}
	return stats
}

// statsFor resolves an organizer's stats, falling back to the neutral defaults
// when the user has no history with that organizer.
func statsFor(stats map[string]OrganizerStats, organizer string) OrganizerStats {
	if s, ok := stats[organizer]; ok {
		return s
	}
	return OrganizerStats{
		AvgRating:   defaultOrganizerRating,
		SuccessRate: defaultOrganizerSuccessRate,
	}
}
