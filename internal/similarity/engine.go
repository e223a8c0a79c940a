package similarity

import (
	"math"

	"github.com/calbisu/menumind/internal/models"
)

// Related event types share guests, formality and menu structure even when
// they are not the same occasion. Symmetric; unrelated pairs score 0.3.
var relatedEvents = map[[2]models.EventType]float64{
	{models.EventWedding, models.EventCommunion}:     0.6,
	{models.EventWedding, models.EventChristening}:   0.5,
	{models.EventCommunion, models.EventChristening}: 0.8,
	{models.EventFamiliar, models.EventChristening}:  0.7,
	{models.EventFamiliar, models.EventCommunion}:    0.7,
	{models.EventCongress, models.EventCorporate}:    0.9,
}

const unrelatedEventScore = 0.3

// Engine scores a request against a stored case across the weighted
// dimensions. Dimensions without applicable data on the request side are
// excluded from both numerator and denominator.
type Engine struct {
	weights        *Weights
	guestScale     float64
	priceBandRatio float64
}

func NewEngine(cfg *models.Config, weights *Weights) *Engine {
	return &Engine{
		weights:        weights,
		guestScale:     cfg.GuestCountScale,
		priceBandRatio: cfg.PriceBandRatio,
	}
}

func (e *Engine) Weights() *Weights {
	return e.weights
}

// Similarity returns the weighted total in [0,1] plus the per-dimension
// breakdown of active sub-scores.
func (e *Engine) Similarity(req models.Request, c *models.Case) (float64, map[string]float64) {
	breakdown := map[string]float64{
		models.DimEventMatch:     eventSimilarity(req.EventType, c.Request.EventType),
		models.DimSeasonMatch:    seasonSimilarity(req.Season, c.Request.Season),
		models.DimGuestCount:     e.guestSimilarity(req.NumGuests, c.Request.NumGuests),
		models.DimPriceRange:     e.priceSimilarity(req.PriceMin, req.PriceMax, c.Menu.TotalPrice()),
		models.DimWinePreference: wineSimilarity(req.WantsWine, c.Menu.Beverage.Alcoholic),
	}
	if len(req.RequiredDiets) > 0 {
		breakdown[models.DimDietCompatibility] = dietSimilarity(req.RequiredDiets, c.Menu)
	}
	if req.CulturalPreference != "" {
		breakdown[models.DimCulturalMatch] = culturalSimilarity(req.CulturalPreference, c.Menu)
	}
	if req.PreferredStyle != "" {
		breakdown[models.DimStyleMatch] = styleSimilarity(req.PreferredStyle, c.Menu)
	}

	// Summation follows the fixed dimension order so float addition is
	// deterministic for identical inputs.
	var weighted, totalWeight float64
	for _, dim := range models.AllDimensions {
		score, active := breakdown[dim]
		if !active {
			continue
		}
		w := e.weights.Get(dim)
		weighted += w * score
		totalWeight += w
	}
	if totalWeight <= 0 {
		return 0.0, breakdown
	}
	total := weighted / totalWeight
	return clamp01(total), breakdown
}

func eventSimilarity(a, b models.EventType) float64 {
	if a == b {
		return 1.0
	}
	if s, ok := relatedEvents[[2]models.EventType{a, b}]; ok {
		return s
	}
	if s, ok := relatedEvents[[2]models.EventType{b, a}]; ok {
		return s
	}
	return unrelatedEventScore
}

func seasonSimilarity(a, b models.Season) float64 {
	if a == b || a == models.SeasonAll || b == models.SeasonAll {
		return 1.0
	}
	return 0.0
}

func (e *Engine) guestSimilarity(reqGuests, caseGuests int) float64 {
	if e.guestScale <= 0 {
		return 0.0
	}
	diff := math.Abs(float64(reqGuests - caseGuests))
	return 1.0 - math.Min(1.0, diff/e.guestScale)
}

// priceSimilarity measures how much of a small band around the case menu
// price falls inside the requested range.
func (e *Engine) priceSimilarity(reqMin, reqMax, casePrice float64) float64 {
	if reqMax < reqMin {
		return 0.0
	}
	bandMin := casePrice * (1 - e.priceBandRatio)
	bandMax := casePrice * (1 + e.priceBandRatio)
	bandWidth := bandMax - bandMin
	if bandWidth <= 0 {
		// Zero-width band, treat the price as a point.
		if casePrice >= reqMin && casePrice <= reqMax {
			return 1.0
		}
		return 0.0
	}
	overlap := math.Min(reqMax, bandMax) - math.Max(reqMin, bandMin)
	if overlap <= 0 {
		return 0.0
	}
	return clamp01(overlap / bandWidth)
}

func dietSimilarity(required []string, menu models.Menu) float64 {
	if len(required) == 0 {
		return 1.0
	}
	satisfied := 0
	for _, diet := range required {
		if menu.SatisfiesDiet(diet) {
			satisfied++
		}
	}
	return float64(satisfied) / float64(len(required))
}

// culturalSimilarity gives full credit for an exact theme match and bounded
// partial credit for dish-level tradition tags.
func culturalSimilarity(preference models.CulturalTradition, menu models.Menu) float64 {
	if menu.CulturalTheme == preference {
		return 1.0
	}
	tagged := 0
	for _, dish := range menu.Dishes() {
		if dish.HasCulturalTag(preference) {
			tagged++
		}
	}
	return 0.7 * float64(tagged) / 3.0
}

func styleSimilarity(preferred models.CulinaryStyle, menu models.Menu) float64 {
	if menu.DominantStyle == preferred {
		return 1.0
	}
	matching := 0
	for _, dish := range menu.Dishes() {
		if dish.HasStyle(preferred) {
			matching++
		}
	}
	return float64(matching) / 3.0
}

func wineSimilarity(wantsWine, alcoholic bool) float64 {
	if wantsWine == alcoholic {
		return 1.0
	}
	return 0.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
