package recommender

import "github.com/studhub/eventrec/pkg/models"

// The heuristic scorer is an ordered list of (predicate, bonus) rules applied
// to a running accumulator, then clamped to [0, 1]. It shares the location
// and online definitions with the feature extractor.
const heuristicBase = 0.5

type heuristicRule struct {
	name    string
	bonus   float64
	applies func(profile *models.UserProfile, event *models.Event, unis universityResolver) bool
}

var heuristicRules = []heuristicRule{
	{
		name:  "skill_overlap",
		bonus: 0.2,
		applies: func(profile *models.UserProfile, event *models.Event, _ universityResolver) bool {
			eventSkills := make(map[string]struct{}, len(event.RecommendedSkills))
			for _, s := range event.RecommendedSkills {
				eventSkills[s] = struct{}{}
			}
			for _, s := range profile.InterestingSkills {
				if _, ok := eventSkills[s]; ok {
					return true
				}
			}
			return false
		},
	},
	{
		name:  "online",
		bonus: 0.1,
		applies: func(_ *models.UserProfile, event *models.Event, _ universityResolver) bool {
			return event.IsOnline()
		},
	},
	{
		name:  "same_location",
		bonus: 0.15,
		applies: func(profile *models.UserProfile, event *models.Event, unis universityResolver) bool {
			return sameLocation(profile, event, unis)
		},
	},
}

// heuristicScore is the always-available fallback probability estimate.
func heuristicScore(profile *models.UserProfile, event *models.Event, unis universityResolver) float64 {
	score := heuristicBase
	for _, rule := range heuristicRules {
		if rule.applies(profile, event, unis) {
			score += rule.bonus
		}
	}
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
