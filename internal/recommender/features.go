package recommender

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/studhub/eventrec/pkg/models"
)

// FeatureCount is the fixed length of the feature vector. The order of the
// fields is a contract between the classifier and the extractor; both sides
// must agree on the meaning of every index.
const FeatureCount = 14

// Level descriptor keywords and their contributions. The sum is deliberately
// unclamped: a descriptor naming all three levels scores exactly 1.0, and
// downstream feature scaling absorbs the range.
const (
	levelBeginner     = "начальный"
	levelIntermediate = "средний"
	levelAdvanced     = "продвинутый"
)

// universityResolver looks institutions up in the request-supplied table
// first and falls back to the baked-in reference.
type universityResolver struct {
	supplied models.UniversityTable
	builtin  models.UniversityTable
}

func (r universityResolver) city(name string) (string, bool) {
	if u, ok := r.supplied[name]; ok && u.City != "" {
		return u.City, true
	}
	if u, ok := r.builtin[name]; ok && u.City != "" {
		return u.City, true
	}
	return "", false
}

func (r universityResolver) specializations(name string) []string {
	if u, ok := r.supplied[name]; ok {
		return u.Specializations
	}
	if u, ok := r.builtin[name]; ok {
		return u.Specializations
	}
	return nil
}

// sameLocation reports whether the user's education place equals the event
// location verbatim, or resolves to a city equal to the event location.
func sameLocation(profile *models.UserProfile, event *models.Event, unis universityResolver) bool {
	if profile.EducationPlace == "" {
		return false
	}
	place := norm.NFC.String(profile.EducationPlace)
	location := norm.NFC.String(event.Location)
	if place == location {
		return true
	}
	if city, ok := unis.city(profile.EducationPlace); ok {
		return norm.NFC.String(city) == location
	}
	return false
}

// extractFeatures builds the ordered numeric encoding of a (user, event)
// pair. Pure function; identical inputs yield identical vectors.
func extractFeatures(profile *models.UserProfile, event *models.Event, stats map[string]OrganizerStats, unis universityResolver) []float64 {
	features := make([]float64, 0, FeatureCount)

	userSkills := make(map[string]struct{}, len(profile.InterestingSkills))
	for _, s := range profile.InterestingSkills {
		userSkills[s] = struct{}{}
	}
	eventSkills := make(map[string]struct{}, len(event.RecommendedSkills))
	for _, s := range event.RecommendedSkills {
		eventSkills[s] = struct{}{}
	}

	intersection := 0
	for s := range userSkills {
		if _, ok := eventSkills[s]; ok {
			intersection++
		}
	}
	union := len(userSkills) + len(eventSkills) - intersection

	// 1-3: skill overlap, Jaccard similarity, recall against event skills.
	// Empty denominators count as a perfect match.
	features = append(features, float64(intersection))
	if union == 0 {
		features = append(features, 1.0)
	} else {
		features = append(features, float64(intersection)/float64(union))
	}
	if len(eventSkills) == 0 {
		features = append(features, 1.0)
	} else {
		features = append(features, float64(intersection)/float64(len(eventSkills)))
	}

	// 4-5: organizer reputation from the user's own history.
	organizerStats := statsFor(stats, event.Organizer)
	features = append(features, organizerStats.AvgRating)
	features = append(features, organizerStats.SuccessRate)

	// 6-8: temporal context. Weekday is ISO, 0=Monday. No timezone
	// conversion; the event's stated timestamp is taken as-is.
	weekday := (int(event.DateTime.Weekday()) + 6) % 7
	features = append(features, float64(event.DateTime.Hour()))
	features = append(features, float64(weekday))
	features = append(features, boolFeature(weekday >= 5))

	// 9-10: location signals.
	features = append(features, boolFeature(sameLocation(profile, event, unis)))
	features = append(features, boolFeature(event.IsOnline()))

	// 11: organizer specialization vs. event skills, case-insensitive
	// substring match in either direction.
	universityMatch := false
	if specs := unis.specializations(event.Organizer); len(specs) > 0 {
		lowerSkills := make([]string, 0, len(eventSkills))
		for s := range eventSkills {
			lowerSkills = append(lowerSkills, strings.ToLower(s))
		}
		for _, spec := range specs {
			lowerSpec := strings.ToLower(spec)
			for _, skill := range lowerSkills {
				if strings.Contains(skill, lowerSpec) || strings.Contains(lowerSpec, skill) {
					universityMatch = true
					break
				}
			}
			if universityMatch {
				break
			}
		}
	}
	features = append(features, boolFeature(universityMatch))

	// 12-13: normalized duration and capacity.
	features = append(features, float64(event.DurationMinutes)/60.0)
	features = append(features, float64(event.MaxParticipants)/100.0)

	// 14: level descriptor score.
	features = append(features, levelScore(event.Level))

	return features
}

func levelScore(level string) float64 {
	if level == "" {
		return 0.0
	}
	lower := strings.ToLower(norm.NFC.String(level))
	score := 0.0
	if strings.Contains(lower, levelBeginner) {
		score += 0.33
	}
	if strings.Contains(lower, levelIntermediate) {
		score += 0.33
	}
	if strings.Contains(lower, levelAdvanced) {
		score += 0.34
	}
	return score
}

func boolFeature(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
