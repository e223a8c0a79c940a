package similarity

import (
	"time"

	"github.com/calbisu/menumind/internal/models"
	"github.com/sirupsen/logrus"
)

// Per-dimension relevance factors. Dietary and price misses hurt the most,
// wine pairing the least.
var dimensionRelevance = map[string]float64{
	models.DimDietCompatibility: 0.12,
	models.DimPriceRange:        0.10,
	models.DimCulturalMatch:     0.08,
	models.DimStyleMatch:        0.08,
	models.DimSeasonMatch:       0.06,
	models.DimEventMatch:        0.05,
	models.DimGuestCount:        0.04,
	models.DimWinePreference:    0.03,
}

// Satisfaction midpoint on the 0-5 feedback scale. Scores above it push a
// dimension's weight up, below it down, exactly at it leave it untouched.
const neutralMidpoint = 3.0

// WeightUpdate records one applied adjustment, for the learning history.
type WeightUpdate struct {
	Timestamp time.Time `json:"timestamp"`
	Dimension string    `json:"dimension"`
	OldValue  float64   `json:"old_value"`
	NewValue  float64   `json:"new_value"`
	Signal    float64   `json:"signal"`
}

// AdaptiveWeightLearner nudges similarity weights from feedback. It owns
// the shared Weights value; synchronization is the caller's concern.
type AdaptiveWeightLearner struct {
	weights      *Weights
	learningRate float64
	minWeight    float64
	maxWeight    float64
	iterations   int
	history      []WeightUpdate
	log          *logrus.Entry
}

func NewAdaptiveWeightLearner(cfg *models.Config, weights *Weights, logger *logrus.Logger) *AdaptiveWeightLearner {
	return &AdaptiveWeightLearner{
		weights:      weights,
		learningRate: cfg.LearningRate,
		minWeight:    cfg.MinWeight,
		maxWeight:    cfg.MaxWeight,
		log:          logger.WithField("component", "weight_learner"),
	}
}

// UpdateFromFeedback adjusts the weight of every dimension the given
// request/menu pairing actually exercised and returns exactly the applied
// deltas, keyed by dimension. Dimensions whose signal sits on the midpoint
// are not touched and not reported.
func (l *AdaptiveWeightLearner) UpdateFromFeedback(feedback models.FeedbackData, req models.Request, menu models.Menu) map[string]float64 {
	l.iterations++
	now := time.Now()
	deltas := make(map[string]float64)

	for _, dim := range l.exercisedDimensions(req) {
		signal := l.signalFor(dim, feedback)
		direction := sign(signal - neutralMidpoint)
		if direction == 0 {
			continue
		}
		old := l.weights.Get(dim)
		next := clip(old+l.learningRate*direction*dimensionRelevance[dim], l.minWeight, l.maxWeight)
		if next == old {
			continue
		}
		l.weights.set(dim, next)
		deltas[dim] = next - old
		l.history = append(l.history, WeightUpdate{
			Timestamp: now,
			Dimension: dim,
			OldValue:  old,
			NewValue:  next,
			Signal:    signal,
		})
	}

	if len(deltas) > 0 {
		l.log.WithFields(logrus.Fields{
			"score":      feedback.Score,
			"dimensions": len(deltas),
			"iteration":  l.iterations,
		}).Debug("weights adjusted from feedback")
	}
	return deltas
}

func (l *AdaptiveWeightLearner) exercisedDimensions(req models.Request) []string {
	dims := []string{
		models.DimEventMatch,
		models.DimSeasonMatch,
		models.DimGuestCount,
		models.DimPriceRange,
	}
	if len(req.RequiredDiets) > 0 {
		dims = append(dims, models.DimDietCompatibility)
	}
	if req.CulturalPreference != "" {
		dims = append(dims, models.DimCulturalMatch)
	}
	if req.PreferredStyle != "" {
		dims = append(dims, models.DimStyleMatch)
	}
	if req.WantsWine {
		dims = append(dims, models.DimWinePreference)
	}
	return dims
}

// signalFor picks the per-dimension satisfaction when reported, otherwise
// the overall score. Flavor satisfaction drives the wine pairing dimension.
func (l *AdaptiveWeightLearner) signalFor(dim string, feedback models.FeedbackData) float64 {
	switch dim {
	case models.DimPriceRange:
		if feedback.PriceSatisfaction != nil {
			return *feedback.PriceSatisfaction
		}
	case models.DimCulturalMatch:
		if feedback.CulturalSatisfaction != nil {
			return *feedback.CulturalSatisfaction
		}
	case models.DimDietCompatibility:
		if feedback.DietarySatisfaction != nil {
			return *feedback.DietarySatisfaction
		}
	case models.DimWinePreference:
		if feedback.FlavorSatisfaction != nil {
			return *feedback.FlavorSatisfaction
		}
	}
	return feedback.Score
}

// LearningSummary reports totals and per-dimension drift since startup.
type LearningSummary struct {
	Iterations     int                `json:"iterations"`
	TotalUpdates   int                `json:"total_updates"`
	NetDrift       map[string]float64 `json:"net_drift"`
	CurrentWeights map[string]float64 `json:"current_weights"`
}

func (l *AdaptiveWeightLearner) Summary() LearningSummary {
	drift := make(map[string]float64)
	for _, u := range l.history {
		drift[u.Dimension] += u.NewValue - u.OldValue
	}
	return LearningSummary{
		Iterations:     l.iterations,
		TotalUpdates:   len(l.history),
		NetDrift:       drift,
		CurrentWeights: l.weights.Snapshot(),
	}
}

func (l *AdaptiveWeightLearner) History() []WeightUpdate {
	return append([]WeightUpdate(nil), l.history...)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clip(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
