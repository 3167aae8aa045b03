package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studhub/eventrec/pkg/models"
)

var testSkills = []string{"Python", "Machine Learning", "Figma"}

func validRequest() *models.RecommendationRequest {
	return &models.RecommendationRequest{
		UserProfile: models.UserProfile{
			UserID:            1,
			InterestingSkills: []string{"Python"},
			VisitedEvents: []models.Attendance{
				{EventID: 1, Attended: true, Rating: 4},
			},
		},
		Events: []models.Event{
			{
				EventID:           2,
				Title:             "Python для анализа данных",
				Organizer:         "VK Education",
				RecommendedSkills: []string{"Python"},
				DateTime:          time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
				DurationMinutes:   120,
				Location:          models.LocationOnline,
				MaxParticipants:   100,
				Category:          "course",
			},
		},
		NRecommendations: 10,
	}
}

func TestRequestValidator_ValidRequest(t *testing.T) {
	rv, err := NewRequestValidator(testSkills)
	require.NoError(t, err)

	assert.Empty(t, rv.ValidateRequest(validRequest()))
}

func TestRequestValidator_UnknownSkill(t *testing.T) {
	rv, err := NewRequestValidator(testSkills)
	require.NoError(t, err)

	t.Run("in user interests", func(t *testing.T) {
		request := validRequest()
		request.UserProfile.InterestingSkills = []string{"Python", "Underwater Basket Weaving"}

		fieldErrors := rv.ValidateRequest(request)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, []string{"body", "user_profile", "interesting_skills", "1"}, fieldErrors[0].Loc)
		assert.Contains(t, fieldErrors[0].Msg, "not in the available skills list")
		assert.Equal(t, "Underwater Basket Weaving", fieldErrors[0].Input)
	})

	t.Run("in event recommended skills", func(t *testing.T) {
		request := validRequest()
		request.Events[0].RecommendedSkills = []string{"Juggling"}

		fieldErrors := rv.ValidateRequest(request)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, []string{"body", "events", "0", "recommended_skills", "0"}, fieldErrors[0].Loc)
	})
}

func TestRequestValidator_RatingRange(t *testing.T) {
	rv, err := NewRequestValidator(testSkills)
	require.NoError(t, err)

	request := validRequest()
	request.UserProfile.VisitedEvents[0].Rating = 6

	fieldErrors := rv.ValidateRequest(request)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "value_error.max", fieldErrors[0].Type)
}

func TestRequestValidator_RecommendationCountBounds(t *testing.T) {
	rv, err := NewRequestValidator(testSkills)
	require.NoError(t, err)

	for _, count := range []int{-1, 101} {
		request := validRequest()
		request.NRecommendations = count
		assert.NotEmpty(t, rv.ValidateRequest(request), "count %d must be rejected", count)
	}
}
