package recommender

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/studhub/eventrec/internal/config"
	"github.com/studhub/eventrec/internal/ml"
	"github.com/studhub/eventrec/pkg/models"
)

// Mode identifies which scoring path an invocation used. The mode is selected
// once by the training gate and held fixed for every candidate event of that
// invocation.
type Mode string

const (
	ModeTrained   Mode = "trained"
	ModeHeuristic Mode = "heuristic"
)

// Engine is the hybrid scoring engine. It is stateless: every call builds its
// own aggregates and, when the gate passes, its own classifier, so concurrent
// calls are independent and need no locking.
type Engine struct {
	cfg     *config.RecommendationConfig
	builtin models.UniversityTable
	logger  *logrus.Logger
}

func New(cfg *config.RecommendationConfig, builtin models.UniversityTable, logger *logrus.Logger) *Engine {
	return &Engine{
		cfg:     cfg,
		builtin: builtin,
		logger:  logger,
	}
}

type trainedModel struct {
	scaler *ml.StandardScaler
	forest *ml.RandomForest
}

// Recommend scores every event the user has not visited yet and returns the
// top n, sorted by interest probability descending with catalog order
// preserved on ties. It never fails for lack of training data; it fails only
// on contract violations it cannot route around.
func (e *Engine) Recommend(profile *models.UserProfile, events []models.Event, supplied models.UniversityTable, n int) ([]models.Recommendation, Mode, error) {
	if n < 1 {
		return nil, "", fmt.Errorf("recommendation count must be positive, got %d", n)
	}
	if n > e.cfg.MaxRecommendations {
		n = e.cfg.MaxRecommendations
	}

	catalog := make(map[int64]*models.Event, len(events))
	for i := range events {
		catalog[events[i].EventID] = &events[i]
	}

	unis := universityResolver{supplied: supplied, builtin: e.builtin}
	stats := ComputeOrganizerStats(profile, catalog)
	affinity := ComputeSkillAffinity(profile, catalog)

	mode := ModeHeuristic
	model, trained := e.train(profile, catalog, stats, unis)
	if trained {
		mode = ModeTrained
	}

	e.logger.WithFields(logrus.Fields{
		"user_id":        profile.UserID,
		"mode":           mode,
		"events":         len(events),
		"visited_events": len(profile.VisitedEvents),
		"organizers":     len(stats),
		"skill_affinity": len(affinity),
	}).Debug("Scoring mode selected")

	scored := make([]models.Recommendation, 0, len(events))
	for i := range events {
		event := &events[i]
		if profile.Visited(event.EventID) {
			continue
		}

		var probability float64
		if trained {
			p, err := e.predict(model, profile, event, stats, unis)
			if err != nil {
				return nil, mode, err
			}
			probability = p
		} else {
			probability = heuristicScore(profile, event, unis)
		}

		scored = append(scored, models.Recommendation{
			Event:               *event,
			InterestProbability: probability,
		})
	}

	return rank(scored, n), mode, nil
}

// train applies the gate conditions and fits scaler and forest when all of
// them hold. A false return means the call proceeds in heuristic mode; that
// is a defined fallback, never an error.
func (e *Engine) train(profile *models.UserProfile, catalog map[int64]*models.Event, stats map[string]OrganizerStats, unis universityResolver) (*trainedModel, bool) {
	if len(profile.VisitedEvents) < e.cfg.MinVisitedEvents {
		return nil, false
	}

	var features []float64
	var labels []int
	positives := 0
	for _, att := range profile.VisitedEvents {
		event, ok := catalog[att.EventID]
		if !ok {
			// Missing reference data is skipped, not raised.
			continue
		}
		features = append(features, extractFeatures(profile, event, stats, unis)...)
		label := 0
		if att.Attended && att.Rating >= 4 {
			label = 1
			positives++
		}
		labels = append(labels, label)
	}

	if len(labels) == 0 {
		return nil, false
	}
	if positives == 0 || positives == len(labels) {
		return nil, false
	}
	if positives < e.cfg.MinPositiveExamples {
		return nil, false
	}

	matrix := mat.NewDense(len(labels), FeatureCount, features)
	scaler := &ml.StandardScaler{}
	scaled, err := scaler.FitTransform(matrix)
	if err != nil {
		e.logger.WithError(err).Warn("Feature scaling failed, falling back to heuristic scoring")
		return nil, false
	}

	forest := ml.NewRandomForest(e.cfg.ForestSize, e.cfg.RandomSeed)
	if err := forest.Fit(scaled, labels); err != nil {
		e.logger.WithError(err).Warn("Classifier fit failed, falling back to heuristic scoring")
		return nil, false
	}

	e.logger.WithFields(logrus.Fields{
		"user_id":           profile.UserID,
		"training_examples": len(labels),
		"positive_examples": positives,
	}).Debug("Classifier trained")

	return &trainedModel{scaler: scaler, forest: forest}, true
}

func (e *Engine) predict(model *trainedModel, profile *models.UserProfile, event *models.Event, stats map[string]OrganizerStats, unis universityResolver) (float64, error) {
	scaled, err := model.scaler.Transform(extractFeatures(profile, event, stats, unis))
	if err != nil {
		return 0, fmt.Errorf("scoring event %d: %w", event.EventID, err)
	}
	probability, err := model.forest.PredictProba(scaled)
	if err != nil {
		return 0, fmt.Errorf("scoring event %d: %w", event.EventID, err)
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return 0, fmt.Errorf("scoring event %d: probability %v out of range", event.EventID, probability)
	}
	return probability, nil
}
