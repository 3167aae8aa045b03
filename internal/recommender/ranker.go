package recommender

import (
	"sort"

	"github.com/studhub/eventrec/pkg/models"
)

// rank sorts recommendations by probability descending and truncates to n.
// The sort is stable, so equal probabilities keep their catalog order.
func rank(scored []models.Recommendation, n int) []models.Recommendation {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].InterestProbability > scored[j].InterestProbability
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}
