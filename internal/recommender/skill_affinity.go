package recommender

import "github.com/studhub/eventrec/pkg/models"

// ComputeSkillAffinity derives a normalized per-skill weight from attended
// events rated 4 or higher: every recommended skill of such an event
// accumulates the rating, and the result is normalized to sum to 1.
// Returns an empty map when no qualifying attendance exists.
//
// The feature extractor does not consume this signal; it is kept as an
// independently computable aggregate of the user's taste profile.
func ComputeSkillAffinity(profile *models.UserProfile, catalog map[int64]*models.Event) map[string]float64 {
	weights := make(map[string]float64)
	total := 0.0

	for _, att := range profile.VisitedEvents {
		if !att.Attended || att.Rating < 4 {
			continue
		}
		event, ok := catalog[att.EventID]
		if !ok {
			continue
		}
		for _, skill := range event.RecommendedSkills {
			weights[skill] += float64(att.Rating)
			total += float64(att.Rating)
		}
	}

	if total == 0 {
		return map[string]float64{}
	}
	for skill := range weights {
		weights[skill] /= total
	}
	return weights
}
