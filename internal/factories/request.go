package factories

import (
	"math/rand"

	"github.com/calbisu/menumind/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

// RequestFactory produces synthetic requests for simulation runs and
// tests.
type RequestFactory struct {
	rng *rand.Rand
}

func NewRequestFactory(seed int64) *RequestFactory {
	return &RequestFactory{rng: rand.New(rand.NewSource(seed))}
}

func (rf *RequestFactory) CreateRequest() models.Request {
	event := models.AllEventTypes[rf.rng.Intn(len(models.AllEventTypes))]
	seasons := []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn, models.SeasonWinter}
	season := seasons[rf.rng.Intn(len(seasons))]

	priceMin := 30.0 + rf.rng.Float64()*50.0
	priceMax := priceMin + 20.0 + rf.rng.Float64()*40.0

	req := models.Request{
		EventType: event,
		Season:    season,
		NumGuests: 20 + rf.rng.Intn(280),
		PriceMin:  priceMin,
		PriceMax:  priceMax,
		WantsWine: rf.rng.Float64() < 0.7,
	}

	if rf.rng.Float64() < 0.25 {
		req.RequiredDiets = []string{rf.randomDiet()}
	}
	if rf.rng.Float64() < 0.15 {
		req.RestrictedIngredients = []string{rf.randomAllergen()}
	}
	if rf.rng.Float64() < 0.5 {
		styles := models.AllStyles
		req.PreferredStyle = styles[rf.rng.Intn(len(styles))]
	}
	if rf.rng.Float64() < 0.2 {
		traditions := []models.CulturalTradition{
			models.TraditionSpanish, models.TraditionBasque, models.TraditionCatalan,
			models.TraditionGalician, models.TraditionItalian, models.TraditionFrench,
		}
		req.CulturalPreference = traditions[rf.rng.Intn(len(traditions))]
	}
	return req
}

// CreateFeedback fabricates plausible client feedback for a served menu.
func (rf *RequestFactory) CreateFeedback(menuID string) models.FeedbackData {
	score := 2.0 + rf.rng.Float64()*3.0
	price := clampScore(score + rf.rng.Float64() - 0.5)
	flavor := clampScore(score + rf.rng.Float64() - 0.5)
	return models.FeedbackData{
		MenuID:             menuID,
		Success:            score >= 3.0,
		Score:              score,
		Comments:           fake.Lorem().Sentence(8),
		WouldRecommend:     score >= 4.0,
		PriceSatisfaction:  &price,
		FlavorSatisfaction: &flavor,
	}
}

func (rf *RequestFactory) randomDiet() string {
	diets := []string{
		models.DietVegan, models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree,
	}
	return diets[rf.rng.Intn(len(diets))]
}

func (rf *RequestFactory) randomAllergen() string {
	allergens := []string{"prawns", "mussels", "egg", "wheat flour", "milk"}
	return allergens[rf.rng.Intn(len(allergens))]
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
