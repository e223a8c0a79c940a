package cbr

import (
	"sort"
	"time"

	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/models"
	"github.com/calbisu/menumind/internal/similarity"
	"github.com/sirupsen/logrus"
)

// RetrievedCase is one ranked retrieval hit with its similarity breakdown.
type RetrievedCase struct {
	Case       *models.Case
	Similarity float64
	Rank       int
	Breakdown  map[string]float64
}

// RetrievalResult carries the hits plus counters for logging and
// explainability.
type RetrievalResult struct {
	Cases                []RetrievedCase
	CandidatesConsidered int
	CandidatesFiltered   int
	Elapsed              time.Duration
}

// Retriever finds the most similar stored cases for a request. Cases whose
// menu violates a required diet or contains a restricted ingredient are
// filtered out before scoring and never returned.
type Retriever struct {
	cases   *casebase.CaseBase
	engine  *similarity.Engine
	minPool int
	log     *logrus.Entry
}

func NewRetriever(cases *casebase.CaseBase, engine *similarity.Engine, cfg *models.Config, logger *logrus.Logger) *Retriever {
	return &Retriever{
		cases:   cases,
		engine:  engine,
		minPool: cfg.MinCandidatePoolSize,
		log:     logger.WithField("component", "retriever"),
	}
}

// Retrieve returns the top k cases ordered by similarity, tie-broken by
// feedback score and then recency. An empty result means no stored case
// survives the hard filters; the caller falls back to knowledge-based
// generation.
func (r *Retriever) Retrieve(req models.Request, k int) RetrievalResult {
	start := time.Now()

	candidates := r.candidatePool(req)
	considered := len(candidates)

	var hits []RetrievedCase
	for _, c := range candidates {
		if violatesHardConstraints(c.Menu, req) {
			continue
		}
		score, breakdown := r.engine.Similarity(req, c)
		hits = append(hits, RetrievedCase{
			Case:       c,
			Similarity: score,
			Breakdown:  breakdown,
		})
	}
	filtered := considered - len(hits)

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		if hits[i].Case.FeedbackScore != hits[j].Case.FeedbackScore {
			return hits[i].Case.FeedbackScore > hits[j].Case.FeedbackScore
		}
		return lastUsedAfter(hits[i].Case, hits[j].Case)
	})

	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	for i := range hits {
		hits[i].Rank = i + 1
	}

	result := RetrievalResult{
		Cases:                hits,
		CandidatesConsidered: considered,
		CandidatesFiltered:   filtered,
		Elapsed:              time.Since(start),
	}
	r.log.WithFields(logrus.Fields{
		"event":      req.EventType,
		"considered": considered,
		"filtered":   filtered,
		"returned":   len(hits),
	}).Debug("retrieval complete")
	return result
}

// candidatePool unions the event, season and price bracket indices. When
// the union is too small the full case list is used instead.
func (r *Retriever) candidatePool(req models.Request) []*models.Case {
	seen := make(map[string]bool)
	var pool []*models.Case
	add := func(cases []*models.Case) {
		for _, c := range cases {
			if !seen[c.ID] {
				seen[c.ID] = true
				pool = append(pool, c)
			}
		}
	}
	add(r.cases.GetCasesByEvent(req.EventType))
	add(r.cases.GetCasesBySeason(req.Season))
	add(r.cases.GetCasesByPriceRange((req.PriceMin + req.PriceMax) / 2))

	if len(pool) < r.minPool {
		return r.cases.Cases()
	}
	return pool
}

func violatesHardConstraints(menu models.Menu, req models.Request) bool {
	for _, diet := range req.RequiredDiets {
		if !menu.SatisfiesDiet(diet) {
			return true
		}
	}
	for _, ingredient := range req.RestrictedIngredients {
		if menu.ContainsIngredient(ingredient) {
			return true
		}
	}
	return false
}

// lastUsedAfter orders cases by recency, most recently used first. Cases
// never used sort last.
func lastUsedAfter(a, b *models.Case) bool {
	switch {
	case a.LastUsed == nil:
		return false
	case b.LastUsed == nil:
		return true
	default:
		return a.LastUsed.After(*b.LastUsed)
	}
}
