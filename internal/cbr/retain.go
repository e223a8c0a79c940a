package cbr

import (
	"fmt"
	"sort"
	"time"

	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/models"
	"github.com/calbisu/menumind/internal/similarity"
	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"
)

const (
	requestSimilarityWeight = 0.6
	menuSimilarityWeight    = 0.4
)

// Retainer decides whether served menus become new cases, updates
// near-duplicates, feeds the weight learner and keeps the per-event case
// count bounded through utility-based eviction.
type Retainer struct {
	cases            *casebase.CaseBase
	engine           *similarity.Engine
	learner          *similarity.AdaptiveWeightLearner
	qualityThreshold float64
	noveltyThreshold float64
	maxCasesPerEvent int
	now              func() time.Time
	log              *logrus.Entry
}

func NewRetainer(cases *casebase.CaseBase, engine *similarity.Engine, learner *similarity.AdaptiveWeightLearner, cfg *models.Config, logger *logrus.Logger) *Retainer {
	return &Retainer{
		cases:            cases,
		engine:           engine,
		learner:          learner,
		qualityThreshold: cfg.QualityThreshold,
		noveltyThreshold: cfg.NoveltyThreshold,
		maxCasesPerEvent: cfg.MaxCasesPerEvent,
		now:              time.Now,
		log:              logger.WithField("component", "retainer"),
	}
}

// LearnerSummary exposes the weight learner's drift report.
func (r *Retainer) LearnerSummary() similarity.LearningSummary {
	return r.learner.Summary()
}

// clampFeedback bounds the caller-supplied score to the 0-5 scale before
// it reaches retention, learning or the eviction utility.
func clampFeedback(feedback models.FeedbackData) models.FeedbackData {
	if feedback.Score < 0 {
		feedback.Score = 0
	}
	if feedback.Score > 5 {
		feedback.Score = 5
	}
	return feedback
}

// EvaluateRetention applies the quality and novelty policy without
// mutating the case base.
func (r *Retainer) EvaluateRetention(req models.Request, menu models.Menu, feedback models.FeedbackData) models.RetentionDecision {
	feedback = clampFeedback(feedback)
	if feedback.Score < r.qualityThreshold {
		return models.RetentionDecision{
			ShouldRetain: false,
			Reason:       fmt.Sprintf("feedback score %.1f below quality threshold %.1f", feedback.Score, r.qualityThreshold),
			Action:       models.RetentionDiscard,
		}
	}

	existing := r.cases.Cases()
	if len(existing) == 0 {
		return models.RetentionDecision{
			ShouldRetain: true,
			Reason:       "case base empty, storing first case",
			Action:       models.RetentionAddNew,
		}
	}

	var mostSimilar *models.Case
	maxSim := -1.0
	for _, c := range existing {
		reqSim, _ := r.engine.Similarity(req, c)
		menuSim := similarity.MenuSimilarity(menu, c.Menu)
		combined := requestSimilarityWeight*reqSim + menuSimilarityWeight*menuSim
		if combined > maxSim {
			maxSim = combined
			mostSimilar = c
		}
	}

	if maxSim >= r.noveltyThreshold {
		if feedback.Score > mostSimilar.FeedbackScore {
			return models.RetentionDecision{
				ShouldRetain:         true,
				Reason:               fmt.Sprintf("near-duplicate of %s with better feedback (%.1f > %.1f)", mostSimilar.ID, feedback.Score, mostSimilar.FeedbackScore),
				SimilarityToExisting: maxSim,
				MostSimilarCase:      mostSimilar,
				Action:               models.RetentionUpdateExisting,
			}
		}
		return models.RetentionDecision{
			ShouldRetain:         false,
			Reason:               fmt.Sprintf("already have an equal-or-better case (%s, score %.1f)", mostSimilar.ID, mostSimilar.FeedbackScore),
			SimilarityToExisting: maxSim,
			MostSimilarCase:      mostSimilar,
			Action:               models.RetentionDiscard,
		}
	}

	return models.RetentionDecision{
		ShouldRetain:         true,
		Reason:               fmt.Sprintf("sufficiently novel (max similarity %.2f below %.2f)", maxSim, r.noveltyThreshold),
		SimilarityToExisting: maxSim,
		MostSimilarCase:      mostSimilar,
		Action:               models.RetentionAddNew,
	}
}

// Retain executes the retention decision, updates the similarity weights
// from the feedback and runs maintenance after additions. The returned
// message is human-readable.
func (r *Retainer) Retain(req models.Request, menu models.Menu, feedback models.FeedbackData, adaptationNotes []string) (bool, string) {
	feedback = clampFeedback(feedback)
	deltas := r.learner.UpdateFromFeedback(feedback, req, menu)
	if len(deltas) > 0 {
		dims := make([]string, 0, len(deltas))
		for dim := range deltas {
			dims = append(dims, dim)
		}
		sort.Strings(dims)
		r.log.WithFields(logrus.Fields{
			"dimensions": dims,
			"score":      feedback.Score,
		}).Info("similarity weights adjusted")
	}

	decision := r.EvaluateRetention(req, menu, feedback)
	switch decision.Action {
	case models.RetentionDiscard:
		return false, decision.Reason

	case models.RetentionUpdateExisting:
		c := decision.MostSimilarCase
		c.Menu = menu.Clone()
		c.Success = feedback.Success
		c.FeedbackScore = feedback.Score
		c.FeedbackComments = feedback.Comments
		c.AdaptationNotes = append([]string(nil), adaptationNotes...)
		c.Touch(r.now())
		r.cases.RebuildIndexes()
		return true, fmt.Sprintf("updated existing case %s", c.ID)

	default:
		now := r.now()
		c := &models.Case{
			ID:               cuid.New(),
			Request:          req.Clone(),
			Menu:             menu.Clone(),
			Success:          feedback.Success,
			FeedbackScore:    feedback.Score,
			FeedbackComments: feedback.Comments,
			Source:           models.CaseSourceLearned,
			UsageCount:       1,
			LastUsed:         &now,
			AdaptationNotes:  append([]string(nil), adaptationNotes...),
		}
		r.cases.AddCase(c)
		r.maintain(req.EventType)
		return true, fmt.Sprintf("stored new case %s", c.ID)
	}
}

// maintain evicts the lowest-utility cases of one event type when the
// ceiling is exceeded, leaving other event types untouched, then rebuilds
// every index.
func (r *Retainer) maintain(event models.EventType) {
	eventCases := r.cases.GetCasesByEvent(event)
	if len(eventCases) <= r.maxCasesPerEvent {
		return
	}

	sort.SliceStable(eventCases, func(i, j int) bool {
		return r.utility(eventCases[i]) > r.utility(eventCases[j])
	})
	keep := make(map[string]bool, r.maxCasesPerEvent)
	for _, c := range eventCases[:r.maxCasesPerEvent] {
		keep[c.ID] = true
	}

	var survivors []*models.Case
	evicted := 0
	for _, c := range r.cases.Cases() {
		if c.Request.EventType == event && !keep[c.ID] {
			evicted++
			continue
		}
		survivors = append(survivors, c)
	}
	r.cases.ReplaceCases(survivors)
	r.log.WithFields(logrus.Fields{
		"event":   event,
		"evicted": evicted,
		"ceiling": r.maxCasesPerEvent,
	}).Info("case base maintenance complete")
}

// utility ranks cases for eviction by feedback, usage, success and
// recency. Unused cases get no recency bonus.
func (r *Retainer) utility(c *models.Case) float64 {
	score := c.FeedbackScore * 10
	usage := float64(c.UsageCount) * 2
	if usage > 20 {
		usage = 20
	}
	score += usage
	if c.Success {
		score += 10
	}
	if c.LastUsed != nil {
		days := r.now().Sub(*c.LastUsed).Hours() / 24
		bonus := 20 - days
		if bonus > 0 {
			score += bonus
		}
	}
	return score
}
