package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_ValidEnvelope(t *testing.T) {
	sv, err := NewSchemaValidator()
	require.NoError(t, err)

	body := []byte(`{
		"user_profile": {"user_id": 1, "interesting_skills": ["Python"], "visited_events": []},
		"events": [{
			"event_id": 1, "title": "t", "organizer": "o",
			"recommended_skills": [], "datetime": "2025-06-01T10:00:00Z",
			"duration_minutes": 60, "location": "Онлайн",
			"max_participants": 10, "category": "course"
		}],
		"n_recommendations": 5
	}`)

	fieldErrors, err := sv.ValidateBody(body)
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
}

func TestSchemaValidator_MissingRequiredFields(t *testing.T) {
	sv, err := NewSchemaValidator()
	require.NoError(t, err)

	fieldErrors, err := sv.ValidateBody([]byte(`{"events": []}`))
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrors)
	assert.Equal(t, []string{"body"}, fieldErrors[0].Loc)
	assert.Contains(t, fieldErrors[0].Msg, "user_profile")
}

func TestSchemaValidator_WrongTypes(t *testing.T) {
	sv, err := NewSchemaValidator()
	require.NoError(t, err)

	body := []byte(`{
		"user_profile": {"user_id": "not-a-number"},
		"events": []
	}`)

	fieldErrors, err := sv.ValidateBody(body)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrors)
	assert.Equal(t, []string{"body", "user_profile", "user_id"}, fieldErrors[0].Loc)
}

func TestSchemaValidator_RatingOutOfRange(t *testing.T) {
	sv, err := NewSchemaValidator()
	require.NoError(t, err)

	body := []byte(`{
		"user_profile": {
			"user_id": 1,
			"visited_events": [{"event_id": 1, "attended": true, "rating": 9}]
		},
		"events": []
	}`)

	fieldErrors, err := sv.ValidateBody(body)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrors)
	assert.Equal(t, []string{"body", "user_profile", "visited_events", "0", "rating"}, fieldErrors[0].Loc)
}

func TestSchemaValidator_MalformedJSON(t *testing.T) {
	sv, err := NewSchemaValidator()
	require.NoError(t, err)

	_, err = sv.ValidateBody([]byte(`{"user_profile": `))
	assert.Error(t, err)
}
