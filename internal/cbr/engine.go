package cbr

import (
	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/knowledge"
	"github.com/calbisu/menumind/internal/models"
	"github.com/calbisu/menumind/internal/similarity"
	"github.com/sirupsen/logrus"
)

// Proposal is one validated menu offered to the caller, with the
// provenance needed to explain it.
type Proposal struct {
	Menu            models.Menu             `json:"menu"`
	Similarity      float64                 `json:"similarity"`
	SourceCaseID    string                  `json:"source_case_id,omitempty"`
	Breakdown       map[string]float64      `json:"breakdown,omitempty"`
	AdaptationNotes []string                `json:"adaptation_notes,omitempty"`
	Validation      models.ValidationResult `json:"validation"`
}

// ProposalSet is the full answer to one request.
type ProposalSet struct {
	Proposals      []Proposal `json:"proposals"`
	DiversityScore float64    `json:"diversity_score"`
	FromKnowledge  bool       `json:"from_knowledge"`
	Considered     int        `json:"candidates_considered"`
	Filtered       int        `json:"candidates_filtered"`
}

// Engine wires the full cycle: retrieve, adapt, revise, diversify, and
// later retain. Construction injects every collaborator explicitly.
type Engine struct {
	cases       *casebase.CaseBase
	retriever   *Retriever
	adapter     *Adapter
	reviser     *Reviser
	diversifier *Diversifier
	retainer    *Retainer
	generator   *knowledge.Generator
	retrievalK  int
	log         *logrus.Entry
}

func NewEngine(cfg *models.Config, cases *casebase.CaseBase, logger *logrus.Logger) *Engine {
	weights := similarity.NewWeights(cfg.InitialWeights)
	simEngine := similarity.NewEngine(cfg, weights)
	learner := similarity.NewAdaptiveWeightLearner(cfg, weights, logger)
	table := knowledge.NewSubstitutionTable()

	return &Engine{
		cases:       cases,
		retriever:   NewRetriever(cases, simEngine, cfg, logger),
		adapter:     NewAdapter(table, logger),
		reviser:     NewReviser(cfg, logger),
		diversifier: NewDiversifier(cfg),
		retainer:    NewRetainer(cases, simEngine, learner, cfg, logger),
		generator:   knowledge.NewGenerator(cases, cfg.MaxProposals, logger),
		retrievalK:  cfg.RetrievalK,
		log:         logger.WithField("component", "engine"),
	}
}

func (e *Engine) Retriever() *Retriever        { return e.retriever }
func (e *Engine) Adapter() *Adapter            { return e.adapter }
func (e *Engine) Reviser() *Reviser            { return e.reviser }
func (e *Engine) Retainer() *Retainer          { return e.retainer }
func (e *Engine) CaseBase() *casebase.CaseBase { return e.cases }

// Propose runs one synchronous pass of the cycle and returns the diverse,
// validated proposals for the request. Falls back to knowledge-based
// generation when no stored case survives retrieval.
func (e *Engine) Propose(req models.Request) ProposalSet {
	retrieval := e.retriever.Retrieve(req, e.retrievalK)

	var candidates []Proposal
	for _, hit := range retrieval.Cases {
		adapted, notes := e.adapter.Adapt(hit.Case, req)
		if adapted == nil {
			e.log.WithField("case_id", hit.Case.ID).Debug("candidate rejected, not adaptable")
			continue
		}
		validation := e.reviser.Revise(*adapted, req)
		if !validation.IsValid() {
			e.log.WithFields(logrus.Fields{
				"case_id": hit.Case.ID,
				"status":  validation.Status,
			}).Debug("candidate rejected by revision")
			continue
		}
		candidates = append(candidates, Proposal{
			Menu:            *adapted,
			Similarity:      hit.Similarity,
			SourceCaseID:    hit.Case.ID,
			Breakdown:       hit.Breakdown,
			AdaptationNotes: notes,
			Validation:      validation,
		})
	}

	fromKnowledge := false
	if len(candidates) == 0 {
		fromKnowledge = true
		for _, gen := range e.generator.GenerateFromKnowledge(req) {
			validation := e.reviser.Revise(gen.Case.Menu, req)
			if !validation.IsValid() {
				continue
			}
			candidates = append(candidates, Proposal{
				Menu:       gen.Case.Menu,
				Similarity: gen.Similarity,
				Validation: validation,
			})
		}
	}

	menus := make([]models.Menu, len(candidates))
	for i, p := range candidates {
		menus[i] = p.Menu
	}
	selected := e.diversifier.EnsureDiversity(menus)

	keep := make(map[string]bool, len(selected))
	for _, m := range selected {
		keep[m.ID] = true
	}
	var proposals []Proposal
	for _, p := range candidates {
		if keep[p.Menu.ID] {
			proposals = append(proposals, p)
		}
	}

	set := ProposalSet{
		Proposals:      proposals,
		DiversityScore: DiversityScore(selected),
		FromKnowledge:  fromKnowledge,
		Considered:     retrieval.CandidatesConsidered,
		Filtered:       retrieval.CandidatesFiltered,
	}
	e.log.WithFields(logrus.Fields{
		"event":          req.EventType,
		"proposals":      len(proposals),
		"from_knowledge": fromKnowledge,
		"diversity":      set.DiversityScore,
	}).Info("proposals ready")
	return set
}

// AcceptFeedback runs retention and weight learning for a proposal the
// caller has received feedback on.
func (e *Engine) AcceptFeedback(feedback models.FeedbackData, req models.Request, menu models.Menu, adaptationNotes []string) (bool, string) {
	return e.retainer.Retain(req, menu, feedback, adaptationNotes)
}
