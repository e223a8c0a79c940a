package casebase

import (
	"errors"
	"fmt"
	"sync"

	"github.com/calbisu/menumind/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrDishNotFound     = errors.New("dish not found")
	ErrBeverageNotFound = errors.New("beverage not found")
	ErrCaseNotFound     = errors.New("case not found")
)

// CaseBase owns the canonical dish, beverage and case collections and the
// derived lookup indices. The canonical case list is the single source of
// truth; indices are rebuilt from it and never consulted for existence.
//
// A single mutex serializes mutation; retrieval takes snapshot reads.
type CaseBase struct {
	mu sync.RWMutex

	dishes    map[string]models.Dish
	dishOrder []string
	beverages map[string]models.Beverage
	bevOrder  []string
	cases     []*models.Case

	byEvent   map[models.EventType][]*models.Case
	bySeason  map[models.Season][]*models.Case
	byBracket map[string][]*models.Case
	byStyle   map[models.CulinaryStyle][]*models.Case

	log *logrus.Entry
}

func New(logger *logrus.Logger) *CaseBase {
	cb := &CaseBase{
		dishes:    make(map[string]models.Dish),
		beverages: make(map[string]models.Beverage),
		log:       logger.WithField("component", "case_base"),
	}
	cb.resetIndexes()
	return cb
}

// resetIndexes initializes every index key eagerly so lookups never hit a
// missing key.
func (cb *CaseBase) resetIndexes() {
	cb.byEvent = make(map[models.EventType][]*models.Case, len(models.AllEventTypes))
	for _, e := range models.AllEventTypes {
		cb.byEvent[e] = nil
	}
	cb.bySeason = make(map[models.Season][]*models.Case, len(models.AllSeasons))
	for _, s := range models.AllSeasons {
		cb.bySeason[s] = nil
	}
	cb.byBracket = make(map[string][]*models.Case, len(models.AllPriceBrackets))
	for _, b := range models.AllPriceBrackets {
		cb.byBracket[b] = nil
	}
	cb.byStyle = make(map[models.CulinaryStyle][]*models.Case, len(models.AllStyles))
	for _, s := range models.AllStyles {
		cb.byStyle[s] = nil
	}
}

// PriceBracket buckets a menu price for the index.
func PriceBracket(price float64) string {
	switch {
	case price < 30:
		return models.PriceBracketLow
	case price < 60:
		return models.PriceBracketMedium
	case price < 100:
		return models.PriceBracketHigh
	default:
		return models.PriceBracketPremium
	}
}

func (cb *CaseBase) AddDish(d models.Dish) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if _, exists := cb.dishes[d.ID]; !exists {
		cb.dishOrder = append(cb.dishOrder, d.ID)
	}
	cb.dishes[d.ID] = d
}

func (cb *CaseBase) AddBeverage(b models.Beverage) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if _, exists := cb.beverages[b.ID]; !exists {
		cb.bevOrder = append(cb.bevOrder, b.ID)
	}
	cb.beverages[b.ID] = b
}

func (cb *CaseBase) GetDishByID(id string) (models.Dish, error) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	d, ok := cb.dishes[id]
	if !ok {
		return models.Dish{}, fmt.Errorf("%w: %s", ErrDishNotFound, id)
	}
	return d, nil
}

func (cb *CaseBase) GetBeverageByID(id string) (models.Beverage, error) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	b, ok := cb.beverages[id]
	if !ok {
		return models.Beverage{}, fmt.Errorf("%w: %s", ErrBeverageNotFound, id)
	}
	return b, nil
}

// Dishes returns the dish pool in insertion order.
func (cb *CaseBase) Dishes() []models.Dish {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	out := make([]models.Dish, 0, len(cb.dishOrder))
	for _, id := range cb.dishOrder {
		out = append(out, cb.dishes[id])
	}
	return out
}

// Beverages returns the beverage pool in insertion order.
func (cb *CaseBase) Beverages() []models.Beverage {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	out := make([]models.Beverage, 0, len(cb.bevOrder))
	for _, id := range cb.bevOrder {
		out = append(out, cb.beverages[id])
	}
	return out
}

// AddCase appends to the canonical list and updates every index.
func (cb *CaseBase) AddCase(c *models.Case) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.cases = append(cb.cases, c)
	cb.indexCase(c)
	cb.log.WithFields(logrus.Fields{
		"case_id": c.ID,
		"event":   c.Request.EventType,
		"source":  c.Source,
	}).Debug("case added")
}

func (cb *CaseBase) indexCase(c *models.Case) {
	cb.byEvent[c.Request.EventType] = append(cb.byEvent[c.Request.EventType], c)
	cb.bySeason[c.Request.Season] = append(cb.bySeason[c.Request.Season], c)
	bracket := PriceBracket(c.Menu.TotalPrice())
	cb.byBracket[bracket] = append(cb.byBracket[bracket], c)
	if c.Menu.DominantStyle != "" {
		cb.byStyle[c.Menu.DominantStyle] = append(cb.byStyle[c.Menu.DominantStyle], c)
	}
}

// RebuildIndexes derives every index from the canonical list again.
// Idempotent; called after bulk mutation such as eviction.
func (cb *CaseBase) RebuildIndexes() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.rebuildLocked()
}

func (cb *CaseBase) rebuildLocked() {
	cb.resetIndexes()
	for _, c := range cb.cases {
		cb.indexCase(c)
	}
}

// Cases returns a snapshot of the canonical case list.
func (cb *CaseBase) Cases() []*models.Case {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return append([]*models.Case(nil), cb.cases...)
}

func (cb *CaseBase) Len() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return len(cb.cases)
}

func (cb *CaseBase) GetCaseByID(id string) (*models.Case, error) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	for _, c := range cb.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, id)
}

func (cb *CaseBase) GetCasesByEvent(event models.EventType) []*models.Case {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return append([]*models.Case(nil), cb.byEvent[event]...)
}

// GetCasesBySeason unions season-specific cases with ALL-season cases,
// de-duplicated, preserving first-seen order.
func (cb *CaseBase) GetCasesBySeason(season models.Season) []*models.Case {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	seen := make(map[string]bool)
	var out []*models.Case
	for _, c := range cb.bySeason[season] {
		if !seen[c.ID] {
			seen[c.ID] = true
			out = append(out, c)
		}
	}
	if season != models.SeasonAll {
		for _, c := range cb.bySeason[models.SeasonAll] {
			if !seen[c.ID] {
				seen[c.ID] = true
				out = append(out, c)
			}
		}
	}
	return out
}

func (cb *CaseBase) GetCasesByPriceRange(price float64) []*models.Case {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return append([]*models.Case(nil), cb.byBracket[PriceBracket(price)]...)
}

func (cb *CaseBase) GetCasesByStyle(style models.CulinaryStyle) []*models.Case {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return append([]*models.Case(nil), cb.byStyle[style]...)
}

// ReplaceCases swaps the canonical list and rebuilds indices. Used by
// retention maintenance after eviction.
func (cb *CaseBase) ReplaceCases(cases []*models.Case) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.cases = append([]*models.Case(nil), cases...)
	cb.rebuildLocked()
	cb.log.WithField("total_cases", len(cb.cases)).Debug("case list replaced")
}
