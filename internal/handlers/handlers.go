package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/studhub/eventrec/internal/config"
	"github.com/studhub/eventrec/internal/messaging"
	"github.com/studhub/eventrec/internal/recommender"
	"github.com/studhub/eventrec/internal/validation"
	"github.com/studhub/eventrec/pkg/models"
)

type Handlers struct {
	Recommendation *RecommendationHandler
	Reference      *ReferenceHandler
	Health         *HealthHandler
}

func New(
	cfg *config.Config,
	logger *logrus.Logger,
	engine *recommender.Engine,
	cache *recommender.ResultCache,
	publisher *messaging.Publisher,
	requestValidator *validation.RequestValidator,
	skills []string,
	universities models.UniversityTable,
) *Handlers {
	return &Handlers{
		Recommendation: NewRecommendationHandler(cfg, logger, engine, cache, publisher, requestValidator),
		Reference:      NewReferenceHandler(skills, universities),
		Health:         NewHealthHandler(cfg),
	}
}
