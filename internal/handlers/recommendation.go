package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/studhub/eventrec/internal/config"
	"github.com/studhub/eventrec/internal/messaging"
	"github.com/studhub/eventrec/internal/recommender"
	"github.com/studhub/eventrec/internal/validation"
	"github.com/studhub/eventrec/pkg/models"
)

const defaultRecommendationCount = 10

var (
	recommendationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_requests_total",
		Help: "Recommendation requests by scoring mode and cache outcome",
	}, []string{"mode", "cache"})

	recommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_duration_seconds",
		Help:    "End-to-end recommendation scoring latency",
		Buckets: prometheus.DefBuckets,
	})
)

type RecommendationHandler struct {
	cfg       *config.Config
	logger    *logrus.Logger
	engine    *recommender.Engine
	cache     *recommender.ResultCache
	publisher *messaging.Publisher
	validator *validation.RequestValidator
}

func NewRecommendationHandler(
	cfg *config.Config,
	logger *logrus.Logger,
	engine *recommender.Engine,
	cache *recommender.ResultCache,
	publisher *messaging.Publisher,
	requestValidator *validation.RequestValidator,
) *RecommendationHandler {
	return &RecommendationHandler{
		cfg:       cfg,
		logger:    logger,
		engine:    engine,
		cache:     cache,
		publisher: publisher,
		validator: requestValidator,
	}
}

// Recommend scores the supplied catalog for the supplied user and returns the
// ranked top-n. The caller always receives a ranked list; "not enough data to
// train" is an internal fallback, never an error.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	started := time.Now()
	requestID := uuid.New()

	var request models.RecommendationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Invalid request body format",
			},
		})
		return
	}

	if request.NRecommendations == 0 {
		request.NRecommendations = defaultRecommendationCount
	}

	if fieldErrors := h.validator.ValidateRequest(&request); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: fieldErrors})
		return
	}

	cacheKey := h.cache.Key(&request)
	recommendations, mode, cacheHit := h.cache.Get(c.Request.Context(), cacheKey)
	if !cacheHit {
		var err error
		recommendations, mode, err = h.engine.Recommend(
			&request.UserProfile, request.Events, request.Universities, request.NRecommendations,
		)
		if err != nil {
			h.logger.WithError(err).WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    request.UserProfile.UserID,
			}).Error("Recommendation scoring failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "RECOMMENDATION_GENERATION_FAILED",
					"message": "Failed to generate recommendations",
				},
			})
			return
		}
		h.cache.Set(c.Request.Context(), cacheKey, recommendations, mode)
	}

	elapsed := time.Since(started)
	recommendationDuration.Observe(elapsed.Seconds())
	recommendationRequests.WithLabelValues(string(mode), cacheLabel(cacheHit)).Inc()

	h.publisher.PublishServed(messaging.ServedMessage{
		RequestID:        requestID,
		UserID:           request.UserProfile.UserID,
		Mode:             string(mode),
		CandidateEvents:  len(request.Events),
		ReturnedEvents:   len(recommendations),
		CacheHit:         cacheHit,
		ProcessingTimeMs: elapsed.Milliseconds(),
		Timestamp:        time.Now(),
	})

	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}
	c.JSON(http.StatusOK, models.RecommendationResponse{
		UserID:               request.UserProfile.UserID,
		RecommendationsCount: len(recommendations),
		Recommendations:      recommendations,
	})
}

func cacheLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
