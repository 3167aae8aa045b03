package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studhub/eventrec/internal/config"
	"github.com/studhub/eventrec/internal/messaging"
	"github.com/studhub/eventrec/internal/middleware"
	"github.com/studhub/eventrec/internal/recommender"
	"github.com/studhub/eventrec/internal/reference"
	"github.com/studhub/eventrec/internal/validation"
	"github.com/studhub/eventrec/pkg/models"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Recommendation: config.RecommendationConfig{
			MinVisitedEvents:    100,
			MinPositiveExamples: 50,
			MaxRecommendations:  100,
			ForestSize:          25,
			RandomSeed:          42,
		},
	}

	requestValidator, err := validation.NewRequestValidator(reference.Skills)
	require.NoError(t, err)
	schemaValidator, err := validation.NewSchemaValidator()
	require.NoError(t, err)

	engine := recommender.New(&cfg.Recommendation, reference.Universities, logger)
	cache := recommender.NewResultCache(nil, 0, logger)
	publisher := messaging.NewPublisher(&cfg.Kafka, logger)

	h := New(cfg, logger, engine, cache, publisher, requestValidator, reference.Skills, reference.Universities)

	router := gin.New()
	router.POST("/api/v1/recommendations",
		middleware.ValidateRequestBody(schemaValidator),
		h.Recommendation.Recommend,
	)
	router.GET("/api/v1/skills", h.Reference.Skills)
	router.GET("/api/v1/universities", h.Reference.Universities)
	return router
}

func postRecommendations(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func requestBody(events []map[string]interface{}, nRecommendations int) map[string]interface{} {
	return map[string]interface{}{
		"user_profile": map[string]interface{}{
			"user_id":            1,
			"interesting_skills": []string{"Python"},
			"visited_events":     []interface{}{},
		},
		"events":            events,
		"n_recommendations": nRecommendations,
	}
}

func eventJSON(id int64, location string, skills ...string) map[string]interface{} {
	if skills == nil {
		skills = []string{}
	}
	return map[string]interface{}{
		"event_id":           id,
		"title":              fmt.Sprintf("event %d", id),
		"organizer":          "VK Education",
		"recommended_skills": skills,
		"datetime":           "2025-06-01T10:00:00Z",
		"duration_minutes":   60,
		"location":           location,
		"max_participants":   100,
		"category":           "course",
	}
}

func TestRecommend_Success(t *testing.T) {
	router := testRouter(t)

	events := []map[string]interface{}{
		eventJSON(1, "Казань"),
		eventJSON(2, models.LocationOnline),
		eventJSON(3, "Казань", "Python"),
	}

	w := postRecommendations(t, router, requestBody(events, 10))
	require.Equal(t, http.StatusOK, w.Code)

	var response models.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, int64(1), response.UserID)
	assert.Equal(t, 3, response.RecommendationsCount)
	require.Len(t, response.Recommendations, 3)

	// Skill overlap beats online beats baseline.
	assert.Equal(t, int64(3), response.Recommendations[0].EventID)
	assert.InDelta(t, 0.7, response.Recommendations[0].InterestProbability, 1e-12)
	assert.Equal(t, int64(2), response.Recommendations[1].EventID)
	assert.InDelta(t, 0.6, response.Recommendations[1].InterestProbability, 1e-12)
	assert.InDelta(t, 0.5, response.Recommendations[2].InterestProbability, 1e-12)

	for _, rec := range response.Recommendations {
		assert.GreaterOrEqual(t, rec.InterestProbability, 0.0)
		assert.LessOrEqual(t, rec.InterestProbability, 1.0)
	}
}

func TestRecommend_TruncatesToRequestedCount(t *testing.T) {
	router := testRouter(t)

	events := []map[string]interface{}{
		eventJSON(1, "Казань"),
		eventJSON(2, "Казань"),
		eventJSON(3, "Казань"),
	}

	w := postRecommendations(t, router, requestBody(events, 2))
	require.Equal(t, http.StatusOK, w.Code)

	var response models.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.RecommendationsCount)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	router := testRouter(t)

	w := postRecommendations(t, router, requestBody([]map[string]interface{}{}, 5))
	require.Equal(t, http.StatusOK, w.Code)

	var response models.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 0, response.RecommendationsCount)
	assert.NotNil(t, response.Recommendations)
}

func TestRecommend_UnknownSkillRejected(t *testing.T) {
	router := testRouter(t)

	body := requestBody([]map[string]interface{}{eventJSON(1, "Казань")}, 5)
	body["user_profile"].(map[string]interface{})["interesting_skills"] = []string{"Time Travel"}

	w := postRecommendations(t, router, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Detail)
	assert.Contains(t, response.Detail[0].Msg, "not in the available skills list")
}

func TestRecommend_BadEnvelope(t *testing.T) {
	router := testRouter(t)

	t.Run("empty body", func(t *testing.T) {
		w := postRecommendations(t, router, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := postRecommendations(t, router, `{"user_profile":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing user profile", func(t *testing.T) {
		w := postRecommendations(t, router, `{"events": []}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		w := postRecommendations(t, router, `{
			"user_profile": {
				"user_id": 1,
				"visited_events": [{"event_id": 1, "attended": true, "rating": 0}]
			},
			"events": []
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestReferenceEndpoints(t *testing.T) {
	router := testRouter(t)

	t.Run("skills", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Skills []string `json:"skills"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Skills)
		assert.Contains(t, response.Skills, "Machine Learning")
	})

	t.Run("universities", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/universities", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Universities models.UniversityTable `json:"universities"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Universities, "МФТИ")
		assert.Equal(t, "Долгопрудный", response.Universities["МФТИ"].City)
	})
}
